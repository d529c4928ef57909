// Package store holds the in-memory entity collections backing the platform
// and the cascade rules that keep derived counters consistent across them.
// Nothing here persists beyond the process lifetime.
package store

// Store aggregates every entity store behind one lifecycle. The demand store
// is wired to the iteration store through the shared cascade runner.
type Store struct {
	Projects   *ProjectStore
	Iterations *IterationStore
	Demands    *DemandStore
	Bugs       *BugStore
	TestCases  *TestCaseStore
	Users      *UserStore
	Prefs      *PrefsStore
	Cascades   *CascadeRunner
}

// New builds a fully seeded store with a running cascade worker.
func New() *Store {
	return NewWithRunner(NewCascadeRunner())
}

// NewWithRunner builds a seeded store around the given runner. A nil runner
// makes every cascade apply inline.
func NewWithRunner(runner *CascadeRunner) *Store {
	iterations := NewIterationStore(seedIterations())
	return &Store{
		Projects:   NewProjectStore(seedProjects()),
		Iterations: iterations,
		Demands:    NewDemandStore(seedDemands(), iterations, runner),
		Bugs:       NewBugStore(seedBugs(8), bugSeedBase+8),
		TestCases:  NewTestCaseStore(seedTestCases()),
		Users:      NewUserStore(seedUsers()),
		Prefs:      NewPrefsStore(),
		Cascades:   runner,
	}
}

// Close drains outstanding cascades and stops the worker.
func (s *Store) Close() {
	s.Cascades.Stop()
}
