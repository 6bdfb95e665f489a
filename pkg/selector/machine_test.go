package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachine_ZeroValueIsClosed(t *testing.T) {
	var m Machine
	assert.Equal(t, Closed(), m.State())
	assert.False(t, m.State().IsOpen())
}

func TestMachine_Toggle(t *testing.T) {
	var m Machine

	m.Toggle()
	assert.Equal(t, ProviderList(), m.State())

	m.Toggle()
	assert.Equal(t, Closed(), m.State())

	m.Toggle()
	assert.True(t, m.ChooseProvider("OpenAI"))
	m.Toggle()
	assert.Equal(t, Closed(), m.State())
	_, ok := m.State().Provider()
	assert.False(t, ok)
}

func TestMachine_ChooseProviderOnlyFromProviderList(t *testing.T) {
	var m Machine

	assert.False(t, m.ChooseProvider("OpenAI"))
	assert.Equal(t, Closed(), m.State())

	m.Toggle()
	assert.True(t, m.ChooseProvider("OpenAI"))
	assert.Equal(t, ModelList("OpenAI"), m.State())

	assert.False(t, m.ChooseProvider("Google"))
	assert.Equal(t, ModelList("OpenAI"), m.State())
}

func TestMachine_Back(t *testing.T) {
	var m Machine
	assert.False(t, m.Back())

	m.Toggle()
	assert.False(t, m.Back())
	assert.Equal(t, ProviderList(), m.State())

	m.ChooseProvider("OpenAI")
	assert.True(t, m.Back())
	assert.Equal(t, ProviderList(), m.State())
	assert.True(t, m.State().IsOpen())
}

func TestMachine_ChooseModel(t *testing.T) {
	var m Machine

	assert.False(t, m.ChooseModel("OpenAI"))

	m.Toggle()
	assert.False(t, m.ChooseModel("OpenAI"))
	assert.Equal(t, ProviderList(), m.State())

	m.ChooseProvider("OpenAI")
	assert.False(t, m.ChooseModel("Google"))
	assert.Equal(t, ModelList("OpenAI"), m.State())

	assert.True(t, m.ChooseModel("OpenAI"))
	assert.Equal(t, Closed(), m.State())
}

func TestMachine_DismissFromAnyState(t *testing.T) {
	states := []func(*Machine){
		func(*Machine) {},
		func(m *Machine) { m.Toggle() },
		func(m *Machine) { m.Toggle(); m.ChooseProvider("OpenAI") },
		func(m *Machine) { m.Toggle(); m.ChooseProvider("OpenAI"); m.Back() },
	}

	for _, setup := range states {
		var m Machine
		setup(&m)

		m.Dismiss()
		assert.Equal(t, Closed(), m.State())
		_, ok := m.State().Provider()
		assert.False(t, ok)
	}
}

func TestMachine_OnlyToggleOpensFromClosed(t *testing.T) {
	ops := map[string]func(*Machine){
		"choose provider": func(m *Machine) { m.ChooseProvider("OpenAI") },
		"back":            func(m *Machine) { m.Back() },
		"choose model":    func(m *Machine) { m.ChooseModel("OpenAI") },
		"dismiss":         func(m *Machine) { m.Dismiss() },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			var m Machine
			op(&m)
			assert.False(t, m.State().IsOpen())
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", Closed().String())
	assert.Equal(t, "provider-list", ProviderList().String())
	assert.Equal(t, `model-list("OpenAI")`, ModelList("OpenAI").String())
}
