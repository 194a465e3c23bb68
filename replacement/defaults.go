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

package replacement

import (
	"github.com/dualtrack/dualtrack/host"
	"github.com/dualtrack/dualtrack/streaming"
)

// DefaultEntries is the list of replacements for the remastered soundtrack.
// Assets are Ogg Vorbis files with the remastered and original stems
// interleaved.
var DefaultEntries = []Entry{
	{OriginalID: host.SeqTerminaField, AssetName: "NA_BGM_TERMINA_FIELD.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqChase, AssetName: "NA_BGM_CHASE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMajorasTheme, AssetName: "NA_BGM_MAJORAS_THEME.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqClockTower, AssetName: "NA_BGM_CLOCK_TOWER.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqStoneTowerTemple, AssetName: "NA_BGM_STONE_TOWER_TEMPLE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqInvStoneTowerTemple, AssetName: "NA_BGM_INV_STONE_TOWER_TEMPLE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqFailure0, AssetName: "NA_BGM_FAILURE_0.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqFailure1, AssetName: "NA_BGM_FAILURE_1.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqHappyMaskSalesman, AssetName: "NA_BGM_HAPPY_MASK_SALESMAN.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqSongOfHealing, AssetName: "NA_BGM_SONG_OF_HEALING.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqSwampRegion, AssetName: "NA_BGM_SWAMP_REGION.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqAlienInvasion, AssetName: "NA_BGM_ALIEN_INVASION.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqSwampCruise, AssetName: "NA_BGM_SWAMP_CRUISE.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqSharpsCurse, AssetName: "NA_BGM_SHARPS_CURSE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqGreatBayRegion, AssetName: "NA_BGM_GREAT_BAY_REGION.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqIkanaRegion, AssetName: "NA_BGM_IKANA_REGION.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqDekuPalace, AssetName: "NA_BGM_DEKU_PALACE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMountainRegion, AssetName: "NA_BGM_MOUNTAIN_REGION.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqPiratesFortress, AssetName: "NA_BGM_PIRATES_FORTRESS.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqClockTownDay1, AssetName: "NA_BGM_CLOCK_TOWN_DAY_1.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqClockTownDay2, AssetName: "NA_BGM_CLOCK_TOWN_DAY_2.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqClockTownDay3, AssetName: "NA_BGM_CLOCK_TOWN_DAY_3.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqFileSelect, AssetName: "NA_BGM_FILE_SELECT.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqClearEvent, AssetName: "NA_BGM_CLEAR_EVENT.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqEnemy, AssetName: "NA_BGM_ENEMY.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqBoss, AssetName: "NA_BGM_BOSS.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqWoodfallTemple, AssetName: "NA_BGM_WOODFALL_TEMPLE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqOpening, AssetName: "NA_BGM_OPENING.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqInsideAHouse, AssetName: "NA_BGM_INSIDE_A_HOUSE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqGameOver, AssetName: "NA_BGM_GAME_OVER.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqClearBoss, AssetName: "NA_BGM_CLEAR_BOSS.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqGetItem, AssetName: "NA_BGM_GET_ITEM.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqGetHeart, AssetName: "NA_BGM_GET_HEART.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqTimedMiniGame, AssetName: "NA_BGM_TIMED_MINI_GAME.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqGoronRace, AssetName: "NA_BGM_GORON_RACE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMusicBoxHouse, AssetName: "NA_BGM_MUSIC_BOX_HOUSE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqZeldasLullaby, AssetName: "NA_BGM_ZELDAS_LULLABY.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqRosaSisters, AssetName: "NA_BGM_ROSA_SISTERS.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqOpenChest, AssetName: "NA_BGM_OPEN_CHEST.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMarineResearchLab, AssetName: "NA_BGM_MARINE_RESEARCH_LAB.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqGiantsTheme, AssetName: "NA_BGM_GIANTS_THEME.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqSongOfStorms, AssetName: "NA_BGM_SONG_OF_STORMS.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqRomaniRanch, AssetName: "NA_BGM_ROMANI_RANCH.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqGoronVillage, AssetName: "NA_BGM_GORON_VILLAGE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMayorsOffice, AssetName: "NA_BGM_MAYORS_OFFICE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqZoraHall, AssetName: "NA_BGM_ZORA_HALL.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqGetNewMask, AssetName: "NA_BGM_GET_NEW_MASK.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMiniBoss, AssetName: "NA_BGM_MINI_BOSS.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqGetSmallItem, AssetName: "NA_BGM_GET_SMALL_ITEM.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqAstralObservatory, AssetName: "NA_BGM_ASTRAL_OBSERVATORY.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqCavern, AssetName: "NA_BGM_CAVERN.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMilkBar, AssetName: "NA_BGM_MILK_BAR.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqZeldaAppear, AssetName: "NA_BGM_ZELDA_APPEAR.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqSariasSong, AssetName: "NA_BGM_SARIAS_SONG.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqGoronGoal, AssetName: "NA_BGM_GORON_GOAL.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqHorse, AssetName: "NA_BGM_HORSE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqHorseGoal, AssetName: "NA_BGM_HORSE_GOAL.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqIngo, AssetName: "NA_BGM_INGO.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqKotakePotionShop, AssetName: "NA_BGM_KOTAKE_POTION_SHOP.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqShop, AssetName: "NA_BGM_SHOP.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqOwl, AssetName: "NA_BGM_OWL.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqShootingGallery, AssetName: "NA_BGM_SHOOTING_GALLERY.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqSonataOfAwakening, AssetName: "NA_BGM_SONATA_OF_AWAKENING.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqGoronLullaby, AssetName: "NA_BGM_GORON_LULLABY.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqNewWaveBossaNova, AssetName: "NA_BGM_NEW_WAVE_BOSSA_NOVA.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqNewWaveSaxophone, AssetName: "NA_BGM_NEW_WAVE_BOSSA_NOVA.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqNewWaveVocal, AssetName: "NA_BGM_NEW_WAVE_VOCAL.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqElegyOfEmptiness, AssetName: "NA_BGM_ELEGY_OF_EMPTINESS.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqOathToOrder, AssetName: "NA_BGM_OATH_TO_ORDER.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqSwordTrainingHall, AssetName: "NA_BGM_SWORD_TRAINING_HALL.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqLearnedNewSong, AssetName: "NA_BGM_LEARNED_NEW_SONG.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqBremenMarch, AssetName: "NA_BGM_BREMEN_MARCH.ogg", Lane: LaneFanfare, IOProfile: streaming.IOBremen},
	{OriginalID: host.SeqBalladOfTheWindFish, AssetName: "NA_BGM_BALLAD_OF_THE_WIND_FISH.ogg", Lane: LaneFanfare, IOProfile: streaming.IOWindFish},
	{OriginalID: host.SeqSongOfSoaring, AssetName: "NA_BGM_SONG_OF_SOARING.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqFinalHours, AssetName: "NA_BGM_FINAL_HOURS.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMikauRiff, AssetName: "NA_BGM_MIKAU_RIFF.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMikauFinale, AssetName: "NA_BGM_MIKAU_FINALE.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqFrogSong, AssetName: "NA_BGM_FROG_SONG.ogg", Lane: LaneBGM, IOProfile: streaming.IOFrog},
	{OriginalID: host.SeqPianoSession, AssetName: "NA_BGM_PIANO_SESSION.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqIndigoGoSession, AssetName: "NA_BGM_INDIGO_GO_SESSION.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqSnowheadTemple, AssetName: "NA_BGM_SNOWHEAD_TEMPLE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqGreatBayTemple, AssetName: "NA_BGM_GREAT_BAY_TEMPLE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMajorasWrath, AssetName: "NA_BGM_MAJORAS_WRATH.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMajorasIncarnation, AssetName: "NA_BGM_MAJORAS_INCARNATION.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMajorasMask, AssetName: "NA_BGM_MAJORAS_MASK.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqBassPlay, AssetName: "NA_BGM_BASS_PLAY.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqDrumsPlay, AssetName: "NA_BGM_DRUMS_PLAY.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqPianoPlay, AssetName: "NA_BGM_PIANO_PLAY.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqIkanaCastle, AssetName: "NA_BGM_IKANA_CASTLE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqGatheringGiants, AssetName: "NA_BGM_GATHERING_GIANTS.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqKamaroDance, AssetName: "NA_BGM_KAMARO_DANCE.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqCremiaCarriage, AssetName: "NA_BGM_CREMIA_CARRIAGE.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqKeatonQuiz, AssetName: "NA_BGM_KEATON_QUIZ.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqEndCredits, AssetName: "NA_BGM_END_CREDITS.ogg", Lane: LaneBGM, IOProfile: streaming.IOCredits1},
	{OriginalID: host.SeqTitleTheme, AssetName: "NA_BGM_TITLE_THEME.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqDungeonAppear, AssetName: "NA_BGM_DUNGEON_APPEAR.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqWoodfallClear, AssetName: "NA_BGM_WOODFALL_CLEAR.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqSnowheadClear, AssetName: "NA_BGM_SNOWHEAD_CLEAR.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqIntoTheMoon, AssetName: "NA_BGM_INTO_THE_MOON.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqGoodbyeGiant, AssetName: "NA_BGM_GOODBYE_GIANT.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqTatlAndTael, AssetName: "NA_BGM_TATL_AND_TAEL.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMoonsDestruction, AssetName: "NA_BGM_MOONS_DESTRUCTION.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqOcarinaGuitarBassSession, AssetName: "NA_BGM_OCARINA_GUITAR_BASS_SESSION.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},
	{OriginalID: host.SeqEndCreditsSecondHalf, AssetName: "NA_BGM_END_CREDITS_SECOND_HALF.ogg", Lane: LaneBGM, IOProfile: streaming.IOCredits2},
	{OriginalID: host.SeqMorning, AssetName: "NB_BGM_MORNING.ogg", Lane: LaneFanfare, IOProfile: streaming.IONone},

	// legacy pointer identifiers. these resolve to the same asset file as
	// the sequence they point to
	{OriginalID: host.SeqClockTownDay2Ptr, AssetName: "NA_BGM_CLOCK_TOWN_DAY_2.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqFairyFountain, AssetName: "NA_BGM_FAIRY_FOUNTAIN.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMilkBarDuplicate, AssetName: "NA_BGM_MILK_BAR.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
	{OriginalID: host.SeqMajorasLair, AssetName: "NA_BGM_FINAL_HOURS.ogg", Lane: LaneBGM, IOProfile: streaming.IONone},
}

// DefaultTable returns a new Table created from DefaultEntries.
func DefaultTable() *Table {
	return NewTable(DefaultEntries)
}
