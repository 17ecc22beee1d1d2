package render

import "github.com/gdamore/tcell/v2"

func rgb(r, g, b int32) Color {
	return tcell.NewRGBColor(r, g, b)
}

// Базовая палитра: оттенки от светлого к темному
var (
	PrimaryLightest = rgb(110, 121, 119)
	PrimaryLighter  = rgb(88, 100, 98)
	Primary         = rgb(68, 82, 79)
	PrimaryDarker   = rgb(48, 61, 59)
	PrimaryDarkest  = rgb(29, 45, 42)

	SecondaryLightest = rgb(116, 120, 126)
	SecondaryLighter  = rgb(93, 97, 105)
	Secondary         = rgb(72, 77, 85)
	SecondaryDarker   = rgb(51, 56, 64)
	SecondaryDarkest  = rgb(31, 38, 47)

	AlternateLightest = rgb(190, 184, 174)
	AlternateLighter  = rgb(158, 151, 138)
	Alternate         = rgb(129, 121, 107)
	AlternateDarker   = rgb(97, 87, 71)
	AlternateDarkest  = rgb(71, 62, 45)
)

// Палитра DawnBringer для акцентов
var (
	DbDark       = rgb(20, 12, 28)
	DbOldBlood   = rgb(68, 36, 52)
	DbDeepWater  = rgb(48, 52, 109)
	DbOldStone   = rgb(78, 74, 78)
	DbWood       = rgb(133, 76, 48)
	DbVegetation = rgb(52, 101, 36)
	DbBlood      = rgb(208, 70, 72)
	DbStone      = rgb(117, 113, 97)
	DbWater      = rgb(89, 125, 206)
	DbBrightWood = rgb(210, 125, 44)
	DbMetal      = rgb(133, 149, 161)
	DbGrass      = rgb(109, 170, 44)
	DbSkin       = rgb(210, 170, 153)
	DbSky        = rgb(109, 194, 202)
	DbSun        = rgb(218, 212, 94)
	DbLight      = rgb(222, 238, 214)
)

// Цвета клеток карты.
// Четыре состояния ({стена, пол} x {в поле зрения, по памяти})
// обязаны давать четыре разные пары цвет/фон.
var (
	FloorBackground    = tcell.ColorBlack
	Floor              = AlternateDarkest
	FloorBackgroundFov = DbDark
	FloorFov           = Alternate

	WallBackground    = SecondaryDarkest
	Wall              = Secondary
	WallBackgroundFov = SecondaryDarker
	WallFov           = SecondaryLighter
)

// Цвета текста и персонажей
var (
	TextHeading = DbLight
	Text        = DbLight
	Gold        = DbSun
	PlayerColor = DbLight
)
