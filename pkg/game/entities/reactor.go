package entities

// Reactor tracks the power a ship can hand out to its main systems.
//
// PowerAvailable counts every unallocated unit, backup battery units included;
// BackupPowerAvailable is the backup share of it.
type Reactor struct {
	SystemPower          int
	SystemBackupPower    int
	PowerAvailable       int
	BackupPowerAvailable int
	PowerBlocked         int
}

// NewReactor creates a reactor with nothing allocated.
func NewReactor(power, backup int) *Reactor {
	return &Reactor{
		SystemPower:          power,
		SystemBackupPower:    backup,
		PowerAvailable:       power + backup,
		BackupPowerAvailable: backup,
	}
}

// Draw takes n units, spending backup power first. It returns the number of
// backup units used, and false without changing anything if n units are not free.
func (r *Reactor) Draw(n int) (fromBackup int, ok bool) {
	if n <= 0 || r.PowerAvailable < n {
		return 0, false
	}
	fromBackup = min(r.BackupPowerAvailable, n)
	r.PowerAvailable -= n
	r.BackupPowerAvailable -= fromBackup
	return fromBackup, true
}

// Release gives n units back, toBackup of them to the backup pool.
func (r *Reactor) Release(n, toBackup int) {
	r.PowerAvailable += n
	r.BackupPowerAvailable += toBackup
}

// Snapshot copies the reactor for readers outside the ship.
func (r *Reactor) Snapshot() ReactorState {
	return ReactorState(*r)
}

// ReactorState is a read-only copy of a Reactor.
type ReactorState Reactor

// Total is the size of the reactor bar including backup.
func (s ReactorState) Total() int {
	return s.SystemPower + s.SystemBackupPower
}

// NormalAvailable is the free power that is not backup power.
func (s ReactorState) NormalAvailable() int {
	return s.PowerAvailable - s.BackupPowerAvailable
}

// Used is the power currently allocated to systems.
func (s ReactorState) Used() int {
	return s.Total() - s.PowerBlocked - s.PowerAvailable
}
