// Package selector implements the two-level provider → model picker.
//
// A [Machine] moves between three states: Closed, ProviderList (open, no
// provider chosen) and ModelList (open, drilled into one provider). A
// [Selector] binds a Machine to one model selection of a configuration and
// commits the chosen model through a [modelconfig.Mutator].
package selector

import "fmt"

// Kind discriminates State.
type Kind int

const (
	KindClosed Kind = iota
	KindProviderList
	KindModelList
)

func (k Kind) String() string {
	switch k {
	case KindClosed:
		return "closed"
	case KindProviderList:
		return "provider-list"
	case KindModelList:
		return "model-list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// State is the picker state. Only ModelList carries a provider, so a closed
// picker can never hold a chosen provider.
type State struct {
	kind     Kind
	provider string
}

// Closed is the resting state.
func Closed() State { return State{kind: KindClosed} }

// ProviderList is the open state listing providers.
func ProviderList() State { return State{kind: KindProviderList} }

// ModelList is the open state listing the models of provider.
func ModelList(provider string) State { return State{kind: KindModelList, provider: provider} }

// Kind returns the state's discriminator.
func (s State) Kind() Kind { return s.kind }

// IsOpen reports whether the dropdown is shown.
func (s State) IsOpen() bool { return s.kind != KindClosed }

// Provider returns the drilled-into provider. ok is false outside ModelList.
func (s State) Provider() (provider string, ok bool) {
	if s.kind != KindModelList {
		return "", false
	}
	return s.provider, true
}

func (s State) String() string {
	if s.kind == KindModelList {
		return fmt.Sprintf("%s(%q)", s.kind, s.provider)
	}
	return s.kind.String()
}
