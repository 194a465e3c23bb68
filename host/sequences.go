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

package host

import "fmt"

// SeqID identifies a sequence in the host's sequence table. The original
// music cues occupy the low numbers. Streamed sequences created at startup
// are given numbers after the last original sequence.
type SeqID int32

// NoSequence is the SeqID of a player that is not playing anything.
const NoSequence SeqID = -1

func (id SeqID) String() string {
	if n, ok := sequenceNames[id]; ok {
		return n
	}
	return fmt.Sprintf("SEQ_%#02x", int32(id))
}

// List of original music cues.
const (
	SeqGeneralSFX               SeqID = 0x00
	SeqAmbience                 SeqID = 0x01
	SeqTerminaField             SeqID = 0x02
	SeqChase                    SeqID = 0x03
	SeqMajorasTheme             SeqID = 0x04
	SeqClockTower               SeqID = 0x05
	SeqStoneTowerTemple         SeqID = 0x06
	SeqInvStoneTowerTemple      SeqID = 0x07
	SeqFailure0                 SeqID = 0x08
	SeqFailure1                 SeqID = 0x09
	SeqHappyMaskSalesman        SeqID = 0x0a
	SeqSongOfHealing            SeqID = 0x0b
	SeqSwampRegion              SeqID = 0x0c
	SeqAlienInvasion            SeqID = 0x0d
	SeqSwampCruise              SeqID = 0x0e
	SeqSharpsCurse              SeqID = 0x0f
	SeqGreatBayRegion           SeqID = 0x10
	SeqIkanaRegion              SeqID = 0x11
	SeqDekuPalace               SeqID = 0x12
	SeqMountainRegion           SeqID = 0x13
	SeqPiratesFortress          SeqID = 0x14
	SeqClockTownDay1            SeqID = 0x15
	SeqClockTownDay2            SeqID = 0x16
	SeqClockTownDay3            SeqID = 0x17
	SeqFileSelect               SeqID = 0x18
	SeqClearEvent               SeqID = 0x19
	SeqEnemy                    SeqID = 0x1a
	SeqBoss                     SeqID = 0x1b
	SeqWoodfallTemple           SeqID = 0x1c
	SeqClockTownMain            SeqID = 0x1d
	SeqOpening                  SeqID = 0x1e
	SeqInsideAHouse             SeqID = 0x1f
	SeqGameOver                 SeqID = 0x20
	SeqClearBoss                SeqID = 0x21
	SeqGetItem                  SeqID = 0x22
	SeqClockTownDay2Ptr         SeqID = 0x23
	SeqGetHeart                 SeqID = 0x24
	SeqTimedMiniGame            SeqID = 0x25
	SeqGoronRace                SeqID = 0x26
	SeqMusicBoxHouse            SeqID = 0x27
	SeqFairyFountain            SeqID = 0x28
	SeqZeldasLullaby            SeqID = 0x29
	SeqRosaSisters              SeqID = 0x2a
	SeqOpenChest                SeqID = 0x2b
	SeqMarineResearchLab        SeqID = 0x2c
	SeqGiantsTheme              SeqID = 0x2d
	SeqSongOfStorms             SeqID = 0x2e
	SeqRomaniRanch              SeqID = 0x2f
	SeqGoronVillage             SeqID = 0x30
	SeqMayorsOffice             SeqID = 0x31
	SeqOcarinaEpona             SeqID = 0x32
	SeqOcarinaSuns              SeqID = 0x33
	SeqOcarinaTime              SeqID = 0x34
	SeqOcarinaStorm             SeqID = 0x35
	SeqZoraHall                 SeqID = 0x36
	SeqGetNewMask               SeqID = 0x37
	SeqMiniBoss                 SeqID = 0x38
	SeqGetSmallItem             SeqID = 0x39
	SeqAstralObservatory        SeqID = 0x3a
	SeqCavern                   SeqID = 0x3b
	SeqMilkBar                  SeqID = 0x3c
	SeqZeldaAppear              SeqID = 0x3d
	SeqSariasSong               SeqID = 0x3e
	SeqGoronGoal                SeqID = 0x3f
	SeqHorse                    SeqID = 0x40
	SeqHorseGoal                SeqID = 0x41
	SeqIngo                     SeqID = 0x42
	SeqKotakePotionShop         SeqID = 0x43
	SeqShop                     SeqID = 0x44
	SeqOwl                      SeqID = 0x45
	SeqShootingGallery          SeqID = 0x46
	SeqOcarinaSoaring           SeqID = 0x47
	SeqOcarinaHealing           SeqID = 0x48
	SeqInvertedSongOfTime       SeqID = 0x49
	SeqSongOfDoubleTime         SeqID = 0x4a
	SeqSonataOfAwakening        SeqID = 0x4b
	SeqGoronLullaby             SeqID = 0x4c
	SeqNewWaveBossaNova         SeqID = 0x4d
	SeqNewWaveSaxophone         SeqID = 0x4e
	SeqNewWaveVocal             SeqID = 0x4f
	SeqElegyOfEmptiness         SeqID = 0x50
	SeqOathToOrder              SeqID = 0x51
	SeqSwordTrainingHall        SeqID = 0x52
	SeqOcarinaLullabyIntro      SeqID = 0x53
	SeqLearnedNewSong           SeqID = 0x54
	SeqBremenMarch              SeqID = 0x55
	SeqBalladOfTheWindFish      SeqID = 0x56
	SeqSongOfSoaring            SeqID = 0x57
	SeqMilkBarDuplicate         SeqID = 0x58
	SeqFinalHours               SeqID = 0x59
	SeqMikauRiff                SeqID = 0x5a
	SeqMikauFinale              SeqID = 0x5b
	SeqFrogSong                 SeqID = 0x5c
	SeqOcarinaSonata            SeqID = 0x5d
	SeqOcarinaLullaby           SeqID = 0x5e
	SeqOcarinaNewWave           SeqID = 0x5f
	SeqOcarinaElegy             SeqID = 0x60
	SeqOcarinaOath              SeqID = 0x61
	SeqMajorasLair              SeqID = 0x62
	SeqOcarinaLullabyIntroPtr   SeqID = 0x63
	SeqOcarinaGuitarBassSession SeqID = 0x64
	SeqPianoSession             SeqID = 0x65
	SeqIndigoGoSession          SeqID = 0x66
	SeqSnowheadTemple           SeqID = 0x67
	SeqGreatBayTemple           SeqID = 0x68
	SeqNewWaveSaxophonePtr      SeqID = 0x69
	SeqNewWaveVocalPtr          SeqID = 0x6a
	SeqMajorasWrath             SeqID = 0x6b
	SeqMajorasIncarnation       SeqID = 0x6c
	SeqMajorasMask              SeqID = 0x6d
	SeqBassPlay                 SeqID = 0x6e
	SeqDrumsPlay                SeqID = 0x6f
	SeqPianoPlay                SeqID = 0x70
	SeqIkanaCastle              SeqID = 0x71
	SeqGatheringGiants          SeqID = 0x72
	SeqKamaroDance              SeqID = 0x73
	SeqCremiaCarriage           SeqID = 0x74
	SeqKeatonQuiz               SeqID = 0x75
	SeqEndCredits               SeqID = 0x76
	SeqOpeningLoop              SeqID = 0x77
	SeqTitleTheme               SeqID = 0x78
	SeqDungeonAppear            SeqID = 0x79
	SeqWoodfallClear            SeqID = 0x7a
	SeqSnowheadClear            SeqID = 0x7b
	SeqMorning                  SeqID = 0x7c
	SeqIntoTheMoon              SeqID = 0x7d
	SeqGoodbyeGiant             SeqID = 0x7e
	SeqTatlAndTael              SeqID = 0x7f
	SeqMoonsDestruction         SeqID = 0x80
	SeqEndCreditsSecondHalf     SeqID = 0x81

	// NumOriginalSequences is the size of the original sequence table
	NumOriginalSequences = 0x82
)

// names are used for logging and for the TABLE mode of the command line tool.
// sequences without a name are printed as a hex number.
var sequenceNames = map[SeqID]string{
	SeqGeneralSFX:               "GENERAL_SFX",
	SeqAmbience:                 "AMBIENCE",
	SeqTerminaField:             "TERMINA_FIELD",
	SeqChase:                    "CHASE",
	SeqMajorasTheme:             "MAJORAS_THEME",
	SeqClockTower:               "CLOCK_TOWER",
	SeqStoneTowerTemple:         "STONE_TOWER_TEMPLE",
	SeqInvStoneTowerTemple:      "INV_STONE_TOWER_TEMPLE",
	SeqFailure0:                 "FAILURE_0",
	SeqFailure1:                 "FAILURE_1",
	SeqHappyMaskSalesman:        "HAPPY_MASK_SALESMAN",
	SeqSongOfHealing:            "SONG_OF_HEALING",
	SeqSwampRegion:              "SWAMP_REGION",
	SeqAlienInvasion:            "ALIEN_INVASION",
	SeqSwampCruise:              "SWAMP_CRUISE",
	SeqSharpsCurse:              "SHARPS_CURSE",
	SeqGreatBayRegion:           "GREAT_BAY_REGION",
	SeqIkanaRegion:              "IKANA_REGION",
	SeqDekuPalace:               "DEKU_PALACE",
	SeqMountainRegion:           "MOUNTAIN_REGION",
	SeqPiratesFortress:          "PIRATES_FORTRESS",
	SeqClockTownDay1:            "CLOCK_TOWN_DAY_1",
	SeqClockTownDay2:            "CLOCK_TOWN_DAY_2",
	SeqClockTownDay3:            "CLOCK_TOWN_DAY_3",
	SeqFileSelect:               "FILE_SELECT",
	SeqClearEvent:               "CLEAR_EVENT",
	SeqEnemy:                    "ENEMY",
	SeqBoss:                     "BOSS",
	SeqWoodfallTemple:           "WOODFALL_TEMPLE",
	SeqClockTownMain:            "CLOCK_TOWN_MAIN",
	SeqOpening:                  "OPENING",
	SeqInsideAHouse:             "INSIDE_A_HOUSE",
	SeqGameOver:                 "GAME_OVER",
	SeqClearBoss:                "CLEAR_BOSS",
	SeqGetItem:                  "GET_ITEM",
	SeqClockTownDay2Ptr:         "CLOCK_TOWN_DAY_2_PTR",
	SeqGetHeart:                 "GET_HEART",
	SeqTimedMiniGame:            "TIMED_MINI_GAME",
	SeqGoronRace:                "GORON_RACE",
	SeqMusicBoxHouse:            "MUSIC_BOX_HOUSE",
	SeqFairyFountain:            "FAIRY_FOUNTAIN",
	SeqZeldasLullaby:            "ZELDAS_LULLABY",
	SeqRosaSisters:              "ROSA_SISTERS",
	SeqOpenChest:                "OPEN_CHEST",
	SeqMarineResearchLab:        "MARINE_RESEARCH_LAB",
	SeqGiantsTheme:              "GIANTS_THEME",
	SeqSongOfStorms:             "SONG_OF_STORMS",
	SeqRomaniRanch:              "ROMANI_RANCH",
	SeqGoronVillage:             "GORON_VILLAGE",
	SeqMayorsOffice:             "MAYORS_OFFICE",
	SeqOcarinaEpona:             "OCARINA_EPONA",
	SeqOcarinaSuns:              "OCARINA_SUNS",
	SeqOcarinaTime:              "OCARINA_TIME",
	SeqOcarinaStorm:             "OCARINA_STORM",
	SeqZoraHall:                 "ZORA_HALL",
	SeqGetNewMask:               "GET_NEW_MASK",
	SeqMiniBoss:                 "MINI_BOSS",
	SeqGetSmallItem:             "GET_SMALL_ITEM",
	SeqAstralObservatory:        "ASTRAL_OBSERVATORY",
	SeqCavern:                   "CAVERN",
	SeqMilkBar:                  "MILK_BAR",
	SeqZeldaAppear:              "ZELDA_APPEAR",
	SeqSariasSong:               "SARIAS_SONG",
	SeqGoronGoal:                "GORON_GOAL",
	SeqHorse:                    "HORSE",
	SeqHorseGoal:                "HORSE_GOAL",
	SeqIngo:                     "INGO",
	SeqKotakePotionShop:         "KOTAKE_POTION_SHOP",
	SeqShop:                     "SHOP",
	SeqOwl:                      "OWL",
	SeqShootingGallery:          "SHOOTING_GALLERY",
	SeqOcarinaSoaring:           "OCARINA_SOARING",
	SeqOcarinaHealing:           "OCARINA_HEALING",
	SeqInvertedSongOfTime:       "INVERTED_SONG_OF_TIME",
	SeqSongOfDoubleTime:         "SONG_OF_DOUBLE_TIME",
	SeqSonataOfAwakening:        "SONATA_OF_AWAKENING",
	SeqGoronLullaby:             "GORON_LULLABY",
	SeqNewWaveBossaNova:         "NEW_WAVE_BOSSA_NOVA",
	SeqNewWaveSaxophone:         "NEW_WAVE_SAXOPHONE",
	SeqNewWaveVocal:             "NEW_WAVE_VOCAL",
	SeqElegyOfEmptiness:         "ELEGY_OF_EMPTINESS",
	SeqOathToOrder:              "OATH_TO_ORDER",
	SeqSwordTrainingHall:        "SWORD_TRAINING_HALL",
	SeqOcarinaLullabyIntro:      "OCARINA_LULLABY_INTRO",
	SeqLearnedNewSong:           "LEARNED_NEW_SONG",
	SeqBremenMarch:              "BREMEN_MARCH",
	SeqBalladOfTheWindFish:      "BALLAD_OF_THE_WIND_FISH",
	SeqSongOfSoaring:            "SONG_OF_SOARING",
	SeqMilkBarDuplicate:         "MILK_BAR_DUPLICATE",
	SeqFinalHours:               "FINAL_HOURS",
	SeqMikauRiff:                "MIKAU_RIFF",
	SeqMikauFinale:              "MIKAU_FINALE",
	SeqFrogSong:                 "FROG_SONG",
	SeqOcarinaSonata:            "OCARINA_SONATA",
	SeqOcarinaLullaby:           "OCARINA_LULLABY",
	SeqOcarinaNewWave:           "OCARINA_NEW_WAVE",
	SeqOcarinaElegy:             "OCARINA_ELEGY",
	SeqOcarinaOath:              "OCARINA_OATH",
	SeqMajorasLair:              "MAJORAS_LAIR",
	SeqOcarinaLullabyIntroPtr:   "OCARINA_LULLABY_INTRO_PTR",
	SeqOcarinaGuitarBassSession: "OCARINA_GUITAR_BASS_SESSION",
	SeqPianoSession:             "PIANO_SESSION",
	SeqIndigoGoSession:          "INDIGO_GO_SESSION",
	SeqSnowheadTemple:           "SNOWHEAD_TEMPLE",
	SeqGreatBayTemple:           "GREAT_BAY_TEMPLE",
	SeqNewWaveSaxophonePtr:      "NEW_WAVE_SAXOPHONE_PTR",
	SeqNewWaveVocalPtr:          "NEW_WAVE_VOCAL_PTR",
	SeqMajorasWrath:             "MAJORAS_WRATH",
	SeqMajorasIncarnation:       "MAJORAS_INCARNATION",
	SeqMajorasMask:              "MAJORAS_MASK",
	SeqBassPlay:                 "BASS_PLAY",
	SeqDrumsPlay:                "DRUMS_PLAY",
	SeqPianoPlay:                "PIANO_PLAY",
	SeqIkanaCastle:              "IKANA_CASTLE",
	SeqGatheringGiants:          "GATHERING_GIANTS",
	SeqKamaroDance:              "KAMARO_DANCE",
	SeqCremiaCarriage:           "CREMIA_CARRIAGE",
	SeqKeatonQuiz:               "KEATON_QUIZ",
	SeqEndCredits:               "END_CREDITS",
	SeqOpeningLoop:              "OPENING_LOOP",
	SeqTitleTheme:               "TITLE_THEME",
	SeqDungeonAppear:            "DUNGEON_APPEAR",
	SeqWoodfallClear:            "WOODFALL_CLEAR",
	SeqSnowheadClear:            "SNOWHEAD_CLEAR",
	SeqMorning:                  "MORNING",
	SeqIntoTheMoon:              "INTO_THE_MOON",
	SeqGoodbyeGiant:             "GOODBYE_GIANT",
	SeqTatlAndTael:              "TATL_AND_TAEL",
	SeqMoonsDestruction:         "MOONS_DESTRUCTION",
	SeqEndCreditsSecondHalf:     "END_CREDITS_SECOND_HALF",
}
