package renderer

import (
	"starship/pkg/game/entities"
	"starship/pkg/game/gameplay"
)

// OxygenLowPercent is the level below which a room is shown as short of air.
const OxygenLowPercent = 50.0

// OxygenStyle classifies an oxygen level. Below minimum the room is unbreathable.
func OxygenStyle(oxygen, minimum float64) TextStyle {
	switch {
	case oxygen < minimum:
		return StyleOxygenCritical
	case oxygen < OxygenLowPercent:
		return StyleOxygenLow
	default:
		return StyleOxygenFull
	}
}

// DoorStyle classifies a door for display. Hacked doors show as sealed
// whatever their position.
func DoorStyle(d gameplay.DoorView) TextStyle {
	switch {
	case d.Hacked:
		return StyleDoorSealed
	case d.State == entities.DoorOpen:
		return StyleDoorOpen
	case d.State == entities.DoorClosed:
		return StyleDoorClosed
	default:
		return StyleDoorMoving
	}
}

// BarStyle picks the colour of one energy bar.
func BarStyle(b entities.Bar) TextStyle {
	switch b {
	case entities.BarReactor:
		return StyleBarReactor
	case entities.BarBackup:
		return StyleBarBackup
	case entities.BarZoltan:
		return StyleBarZoltan
	case entities.BarIonized, entities.BarCooldown:
		return StyleBarIonized
	case entities.BarDamaged, entities.BarBlocked:
		return StyleBarDamaged
	default:
		return StyleBarEmpty
	}
}

// SymbolStyle picks the colour of a system icon.
func SymbolStyle(s entities.Symbol) TextStyle {
	switch s {
	case entities.SymbolIonized:
		return StyleBarIonized
	case entities.SymbolDestroyed, entities.SymbolDamaged:
		return StyleDenied
	case entities.SymbolPowered:
		return StyleAction
	default:
		return StyleSubtle
	}
}

// ReactorBars lays out the reactor column bottom to top: used power, free
// normal power, free backup power, then blocked power.
func ReactorBars(r entities.ReactorState) []entities.Bar {
	bars := make([]entities.Bar, 0, r.Total())
	for i := 0; i < r.Used(); i++ {
		bars = append(bars, entities.BarReactor)
	}
	for i := 0; i < r.NormalAvailable(); i++ {
		bars = append(bars, entities.BarUnassigned)
	}
	for i := 0; i < r.BackupPowerAvailable; i++ {
		bars = append(bars, entities.BarBackup)
	}
	for i := 0; i < r.PowerBlocked; i++ {
		bars = append(bars, entities.BarBlocked)
	}
	return bars
}
