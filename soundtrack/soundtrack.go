// This file is part of Dualtrack.
//
// Dualtrack is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dualtrack is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dualtrack.  If not, see <https://www.gnu.org/licenses/>.

// Package soundtrack is the soundtrack mod. It connects the replacement table
// and the crossfade engine to the host's callbacks.
//
// The Mod type implements the host.Hooks interface:
//
//	OnStartup() binds the replacement table and applies the configuration
//	OnSceneLoad() returns to the default soundtrack if so configured
//	OnFrameInput() toggles the soundtrack on a press of the L button
//	OnAudioTick() advances the crossfade
//	OnSequencePlayerTick() writes the volumes to a player playing a replaced sequence
package soundtrack

import (
	"github.com/dualtrack/dualtrack/crossfade"
	"github.com/dualtrack/dualtrack/host"
	"github.com/dualtrack/dualtrack/logger"
	"github.com/dualtrack/dualtrack/notifications"
	"github.com/dualtrack/dualtrack/replacement"
	"github.com/dualtrack/dualtrack/streaming"
	"github.com/dualtrack/dualtrack/userinput"
)

// a streaming subsystem that can probe assets ahead of binding
type prefetcher interface {
	Prefetch(basePath string, files []string, parallel int)
}

// Mod is the soundtrack mod.
type Mod struct {
	Table  *replacement.Table
	Engine *crossfade.Engine

	sub      streaming.Subsystem
	hst      replacement.Host
	basePath string

	report BindReport
}

// BindReport is the result of binding the replacement table.
type BindReport = replacement.BindReport

// NewMod is the preferred method of initialisation for the Mod type. The
// replacement table is bound to the assets in basePath when OnStartup() is
// called.
func NewMod(cfg crossfade.Config, sink notifications.Sink, table *replacement.Table,
	sub streaming.Subsystem, hst replacement.Host, basePath string) *Mod {

	return &Mod{
		Table:    table,
		Engine:   crossfade.NewEngine(cfg, sink),
		sub:      sub,
		hst:      hst,
		basePath: basePath,
	}
}

// Report returns the result of binding the replacement table. The zero value
// is returned before OnStartup() has been called.
func (m *Mod) Report() BindReport {
	return m.report
}

// OnStartup implements the host.Hooks interface.
func (m *Mod) OnStartup() error {
	if p, ok := m.sub.(prefetcher); ok {
		p.Prefetch(m.basePath, m.Table.Assets(), 0)
	}

	m.report = m.Table.Bind(m.basePath, m.sub, m.hst)
	m.Engine.Startup()

	logger.Logf(logger.Allow, "soundtrack", "startup: %s active", m.Engine.State().Active)

	return nil
}

// OnSceneLoad implements the host.Hooks interface.
func (m *Mod) OnSceneLoad() {
	m.Engine.OnSceneLoad()
}

// OnFrameInput implements the host.Hooks interface.
func (m *Mod) OnFrameInput(input userinput.Snapshot) {
	m.Engine.OnFrameInput(input)
}

// OnAudioTick implements the host.Hooks interface.
func (m *Mod) OnAudioTick() {
	m.Engine.Tick()
}

// OnSequencePlayerTick implements the host.Hooks interface.
func (m *Mod) OnSequencePlayerTick(player *host.Player) {
	if _, ok := m.Table.Lookup(player.SeqID); ok {
		m.Engine.Apply(player)
	}
}
