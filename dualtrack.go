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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/caarlos0/env/v11"
	"github.com/dualtrack/dualtrack/crossfade"
	"github.com/dualtrack/dualtrack/digest"
	"github.com/dualtrack/dualtrack/host"
	"github.com/dualtrack/dualtrack/logger"
	"github.com/dualtrack/dualtrack/modalflag"
	"github.com/dualtrack/dualtrack/notifications"
	"github.com/dualtrack/dualtrack/paths"
	"github.com/dualtrack/dualtrack/performance"
	"github.com/dualtrack/dualtrack/performance/limiter"
	"github.com/dualtrack/dualtrack/preferences"
	"github.com/dualtrack/dualtrack/prefs"
	"github.com/dualtrack/dualtrack/replacement"
	"github.com/dualtrack/dualtrack/soundtrack"
	"github.com/dualtrack/dualtrack/statsview"
	"github.com/dualtrack/dualtrack/streaming"
	"github.com/dualtrack/dualtrack/userinput"
	"github.com/dualtrack/dualtrack/version"
	"github.com/dualtrack/dualtrack/wavwriter"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// process settings taken from the environment. the equivalent command line
// flags take precedence. the environment takes precedence over the prefs file
type environment struct {
	Assets        string `env:"DUALTRACK_ASSETS"`
	PrefsFile     string `env:"DUALTRACK_PREFS_FILE"`
	Log           bool   `env:"DUALTRACK_LOG"`
	DesktopNotify *bool  `env:"DUALTRACK_DESKTOP_NOTIFY"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Stdout, os.Args[1:])
	stop()
	os.Exit(exitVal)
}

// launch the mode selected by the arguments and return the exit value.
func launch(ctx context.Context, output io.Writer, args []string) int {
	envs, err := env.ParseAs[environment]()
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("PLAY", "RENDER", "TABLE", "STATE", "PERFORMANCE")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	switch md.Mode() {
	case "PLAY":
		err = play(ctx, output, md, envs)
	case "RENDER":
		err = render(output, md, envs)
	case "TABLE":
		err = table(output, md, envs)
	case "STATE":
		err = state(output, md, envs)
	case "PERFORMANCE":
		err = perform(output, md, envs)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// flags common to every mode
type common struct {
	assets    *string
	prefs     *string
	log       *bool
	statsview *bool
	envs      environment
}

func addCommon(md *modalflag.Modes, envs environment) *common {
	return &common{
		assets:    md.AddString("assets", envs.Assets, "directory of replacement audio (default is the resource directory)"),
		prefs:     md.AddString("prefs", "", "preference overrides, eg. \"remaster_volume::2; quick_switch_l::1\""),
		log:       md.AddBool("log", envs.Log, "echo log to stdout"),
		statsview: md.AddBool("statsview", false, "run stats server"),
		envs:      envs,
	}
}

// apply the common flags after the mode has been parsed. the returned function
// should be deferred.
func (c *common) apply(output io.Writer) func() {
	if *c.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *c.statsview {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "! stats server not available in this build")
		}
	}

	prefs.PushCommandLineStack(*c.prefs)
	return func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(output, "! unused preference overrides: %s\n", unused)
		}
	}
}

// session is the soundtrack mod installed in the reference host.
type session struct {
	prefs    *preferences.Preferences
	audio    *host.Audio
	streamer *streaming.Streamer
	mod      *soundtrack.Mod
	recent   *notifications.Recent
	assets   string
}

// newSession creates the host and the mod. The OnStartup() hook has not been
// called.
func newSession(c *common, output io.Writer) (*session, error) {
	var err error

	s := &session{
		audio:  host.NewAudio(),
		recent: notifications.NewRecent(8),
	}

	s.prefs, err = preferences.NewPreferences(c.envs.PrefsFile)
	if err != nil {
		return nil, err
	}

	// the -log flag and the environment can only turn echoing on
	if s.prefs.EchoLog.Get().(bool) {
		logger.SetEcho(output)
	}

	s.assets = *c.assets
	if s.assets == "" {
		s.assets = s.prefs.AssetDir.String()
	}
	if s.assets == "" {
		s.assets, err = paths.ResourcePath(paths.AssetDir, "")
		if err != nil {
			return nil, err
		}
	}

	notify := s.prefs.DesktopNotify.Get().(bool)
	if c.envs.DesktopNotify != nil {
		notify = *c.envs.DesktopNotify
	}

	sink := notifications.Multi{notifications.Log{}, s.recent}
	if notify && notifications.DesktopAvailable() {
		sink = append(sink, notifications.Desktop{})
	}

	s.streamer = streaming.NewStreamer(s.audio)
	s.mod = soundtrack.NewMod(s.prefs, sink, replacement.DefaultTable(), s.streamer, s.audio, s.assets)

	return s, nil
}

// start the session by calling the OnStartup() hook.
func (s *session) start(output io.Writer) error {
	err := s.audio.Init(s.mod)
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "replacement table: %s\n", s.mod.Report())
	return nil
}

// wavRecorder writes the volumes of every audio tick to a wav file.
type wavRecorder struct {
	*soundtrack.Mod
	aw *wavwriter.WavWriter
}

func (r wavRecorder) OnAudioTick() {
	r.Mod.OnAudioTick()
	r.aw.AddTick(r.Mod.Engine.Volumes())
}

func play(ctx context.Context, output io.Writer, md *modalflag.Modes, envs environment) error {
	md.NewMode()
	md.AdditionalHelp("keys: l toggles the soundtrack, s loads a new scene, q quits")

	c := addCommon(md, envs)
	tty := md.AddString("tty", "/dev/tty", "terminal device to read keys from")
	seq := md.AddInt("seq", int(host.SeqTerminaField), "sequence to play on the main BGM player")
	wav := md.AddString("wav", "", "record volume envelope to wav file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	defer c.apply(output)()

	s, err := newSession(c, output)
	if err != nil {
		return err
	}

	var hooks host.Hooks = s.mod
	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		defer func() {
			if err := aw.EndMixing(); err != nil {
				fmt.Fprintf(output, "* error writing %s: %v\n", *wav, err)
			}
		}()
		hooks = wavRecorder{Mod: s.mod, aw: aw}
	}

	err = s.start(output)
	if err != nil {
		return err
	}

	err = s.audio.Play(host.PlayerBGMMain, host.SeqID(*seq))
	if err != nil {
		return err
	}

	trm, err := userinput.OpenTerminal(*tty)
	if err != nil {
		return err
	}
	defer trm.Close()

	fps, err := limiter.NewFPSLimiter(host.FramesPerSecond)
	if err != nil {
		return err
	}

	kb := userinput.NewKeyboard(trm, nil)
	var ctrl userinput.Controller
	var last crossfade.State

	fmt.Fprintf(output, "playing %s\n", host.SeqID(*seq))

	return s.audio.Run(ctx, hooks, fps, func() (userinput.Snapshot, bool) {
		if st := s.mod.Engine.State(); st != last {
			fmt.Fprintf(output, "%s\n", st)
			last = st
		}

		if kb.Err() != nil {
			return userinput.Snapshot{}, false
		}

		down, other := kb.Poll()
		for _, k := range other {
			switch k {
			case 'q':
				return userinput.Snapshot{}, false
			case 's':
				s.audio.LoadScene(hooks)
			}
		}

		return ctrl.Update(down), true
	})
}

func render(output io.Writer, md *modalflag.Modes, envs environment) error {
	md.NewMode()
	md.AdditionalHelp("left channel is the remaster volume, right channel is the original soundtrack volume")

	c := addCommon(md, envs)
	ticks := md.AddInt("ticks", 2*crossfade.Duration, "number of audio ticks to render")
	retoggle := md.AddInt("retoggle", 0, "tick at which to toggle a second time (0 for never)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename := "crossfade.wav"
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *ticks <= 0 {
		return fmt.Errorf("number of ticks must be positive")
	}

	defer c.apply(output)()

	s, err := newSession(c, output)
	if err != nil {
		return err
	}

	aw, err := wavwriter.New(filename)
	if err != nil {
		return err
	}

	dig := digest.NewEnvelope()

	eng := s.mod.Engine
	eng.Toggle()
	for t := 0; t < *ticks; t++ {
		if *retoggle > 0 && t == *retoggle {
			eng.Toggle()
		}
		eng.Tick()
		remaster, ost := eng.Volumes()
		aw.AddTick(remaster, ost)
		dig.AddTick(remaster, ost)
	}

	err = aw.EndMixing()
	if err != nil {
		return err
	}

	dur := durafmt.Parse(wavwriter.TickDuration(*ticks)).LimitFirstN(2)
	fmt.Fprintf(output, "%d ticks (%s) written to %s\n", *ticks, dur, filename)
	fmt.Fprintf(output, "final state: %s\n", eng.State())
	fmt.Fprintf(output, "envelope digest: %s\n", dig)

	return nil
}

func table(output io.Writer, md *modalflag.Modes, envs environment) error {
	md.NewMode()

	c := addCommon(md, envs)
	bind := md.AddBool("bind", true, "bind the table and show the result for each entry")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	defer c.apply(output)()

	s, err := newSession(c, output)
	if err != nil {
		return err
	}

	if *bind {
		err = s.start(output)
		if err != nil {
			return err
		}
	}

	for _, e := range s.mod.Table.Entries() {
		fmt.Fprintf(output, "%-28s %-7s %-9s %-40s", e.OriginalID, e.Lane, e.IOProfile, e.AssetName)

		inf, err := s.streamer.Info(s.assets, e.AssetName)
		if err != nil {
			fmt.Fprintf(output, " %-20s", streaming.ProbeStatus(err))
		} else {
			fmt.Fprintf(output, " %-8s %-11s", humanize.Bytes(uint64(inf.Size)),
				durafmt.Parse(inf.Duration).LimitFirstN(2))
		}

		if *bind {
			if e.Bound() {
				fmt.Fprint(output, " bound")
			} else {
				fmt.Fprint(output, " unbound")
			}
		}
		fmt.Fprintln(output)
	}

	return nil
}

func state(output io.Writer, md *modalflag.Modes, envs environment) error {
	md.NewMode()
	md.AdditionalHelp("output is in graphviz dot format")

	c := addCommon(md, envs)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	w := output
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		f, err := os.Create(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	defer c.apply(output)()

	s, err := newSession(c, output)
	if err != nil {
		return err
	}

	// binding writes the table summary to output. keep it out of the dot
	// output when that is also going to output
	summary := output
	if w == output {
		summary = io.Discard
	}
	err = s.start(summary)
	if err != nil {
		return err
	}

	memviz.Map(w, s.mod.Engine, s.mod.Table)

	return nil
}

func perform(output io.Writer, md *modalflag.Modes, envs environment) error {
	md.NewMode()

	c := addCommon(md, envs)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	defer c.apply(output)()

	s, err := newSession(c, output)
	if err != nil {
		return err
	}

	err = s.start(output)
	if err != nil {
		return err
	}

	// every managed player plays a replaced sequence so that every tick
	// exercises the volume path
	for _, pl := range []host.PlayerID{host.PlayerBGMMain, host.PlayerFanfare, host.PlayerBGMSub} {
		for _, e := range s.mod.Table.Entries() {
			if e.Bound() && (e.Lane == replacement.LaneFanfare) == (pl == host.PlayerFanfare) {
				if err := s.audio.Play(pl, e.OriginalID); err != nil {
					return err
				}
				break
			}
		}
	}

	return performance.Check(output, prf, s.audio, s.mod, *duration)
}
