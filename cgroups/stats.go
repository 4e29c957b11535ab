package cgroups

// Stats is a point-in-time snapshot of a group's externally held
// state. Nothing is cached: every field is one fresh read of one
// control file, taken in sequence, so the fields are not atomic as a
// set.
type Stats struct {
	State State `json:"state"`
	Tasks []int `json:"tasks"`
	Cpus  []int `json:"cpus"`
	Mems  []int `json:"mems"`
}

// Stat snapshots the group.
func (m *Manager) Stat(name string) (*Stats, error) {
	state, err := m.FreezerState(name)
	if err != nil {
		return nil, err
	}
	tasks, err := m.Tasks(name)
	if err != nil {
		return nil, err
	}
	cpus, err := m.Cpus(name)
	if err != nil {
		return nil, err
	}
	mems, err := m.Mems(name)
	if err != nil {
		return nil, err
	}
	return &Stats{
		State: state,
		Tasks: tasks,
		Cpus:  cpus,
		Mems:  mems,
	}, nil
}
