package selector

// Machine is the picker state machine. The zero value is Closed.
type Machine struct {
	state State
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Toggle opens a closed picker on the provider list and closes an open one.
func (m *Machine) Toggle() {
	if m.state.IsOpen() {
		m.state = Closed()
		return
	}
	m.state = ProviderList()
}

// ChooseProvider drills into provider. It is only legal from ProviderList
// and reports whether the transition happened.
func (m *Machine) ChooseProvider(provider string) bool {
	if m.state.kind != KindProviderList {
		return false
	}
	m.state = ModelList(provider)
	return true
}

// Back returns from a model list to the provider list.
func (m *Machine) Back() bool {
	if m.state.kind != KindModelList {
		return false
	}
	m.state = ProviderList()
	return true
}

// ChooseModel closes the picker after a model of provider was picked. It only
// succeeds on the model list of that same provider and reports whether a
// selection was made. The caller commits the model name.
func (m *Machine) ChooseModel(provider string) bool {
	current, ok := m.state.Provider()
	if !ok || current != provider {
		return false
	}
	m.state = Closed()
	return true
}

// Dismiss closes the picker from any state.
func (m *Machine) Dismiss() {
	m.state = Closed()
}
