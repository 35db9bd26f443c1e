package algorithms

import (
	"fmt"
	"sync"
)

// Manager is the registry of available transforms together with the
// currently selected one and the per-algorithm parameter state the GUI
// edits.
type Manager struct {
	algorithms       map[string]Algorithm
	order            []string
	currentAlgorithm string
	parameters       map[string]map[string]interface{}
	mu               sync.RWMutex
}

func NewManager() *Manager {
	manager := &Manager{
		algorithms:       make(map[string]Algorithm),
		currentAlgorithm: ManualRangeName,
		parameters:       make(map[string]map[string]interface{}),
	}

	manager.registerAlgorithms()
	manager.initializeDefaultParameters()

	return manager
}

func (m *Manager) registerAlgorithms() {
	for _, alg := range []Algorithm{
		NewManualRange(),
		NewPercentBlack(),
		NewMeanIterative(),
		NewEntropy(),
		NewMinimumError(),
		NewFuzzyMinimumError(),
		NewStretch(),
		NewEqualize(),
	} {
		m.algorithms[alg.GetName()] = alg
		m.order = append(m.order, alg.GetName())
	}
}

func (m *Manager) initializeDefaultParameters() {
	for name, algorithm := range m.algorithms {
		m.parameters[name] = algorithm.GetDefaultParameters()
	}
}

// Names returns the registered algorithm names in registration order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

func (m *Manager) GetAlgorithm(name string) (Algorithm, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	algorithm, exists := m.algorithms[name]
	if !exists {
		return nil, fmt.Errorf("unknown algorithm: %s", name)
	}
	return algorithm, nil
}

func (m *Manager) SetCurrentAlgorithm(algorithm string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.algorithms[algorithm]; !exists {
		return fmt.Errorf("unknown algorithm: %s", algorithm)
	}

	m.currentAlgorithm = algorithm
	return nil
}

func (m *Manager) GetCurrentAlgorithm() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentAlgorithm
}

// GetParameters returns a copy of the stored parameters for an
// algorithm so callers cannot mutate shared state.
func (m *Manager) GetParameters(algorithm string) map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	params, exists := m.parameters[algorithm]
	if !exists {
		return map[string]interface{}{}
	}
	result := make(map[string]interface{}, len(params))
	for k, v := range params {
		result[k] = v
	}
	return result
}

func (m *Manager) SetParameter(algorithm, key string, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	alg, exists := m.algorithms[algorithm]
	if !exists {
		return fmt.Errorf("unknown algorithm: %s", algorithm)
	}

	candidate := make(map[string]interface{}, len(m.parameters[algorithm])+1)
	for k, v := range m.parameters[algorithm] {
		candidate[k] = v
	}
	candidate[key] = value

	if err := alg.ValidateParameters(candidate); err != nil {
		return err
	}

	m.parameters[algorithm] = candidate
	return nil
}
