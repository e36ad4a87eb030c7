package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/intax/internal/config"
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformRegistry creates transforms from string parameters for the CLI
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters
type TransformFactory func(params map[string]string) (ProfileTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{factories: make(map[string]TransformFactory)}

	registry.Register("raise_salary", createRaiseSalary)
	registry.Register("set_salary", createSetSalary)
	registry.Register("set_deductions", createSetDeductions)
	registry.Register("set_regime", createSetRegime)
	registry.Register("set_pf", createSetPF)
	registry.Register("set_sip", createSetSIP)
	registry.Register("set_savings_goal", createSetSavingsGoal)

	return registry
}

// Register adds a transform factory to the registry
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters
func (r *TransformRegistry) Create(name string, params map[string]string) (ProfileTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s (available: %s)", name, strings.Join(r.List(), ", "))
	}
	return factory(params)
}

// List returns the names of all registered transforms in sorted order
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses "name:key=value,key=value", e.g.
// "set_deductions:80c=150000,80d=25000"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ProfileTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	params := make(map[string]string)
	if paramsStr := strings.TrimSpace(parts[1]); paramsStr != "" {
		for _, pair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(pair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", pair)
			}
			params[strings.ToLower(strings.TrimSpace(kv[0]))] = strings.TrimSpace(kv[1])
		}
	}
	return r.Create(name, params)
}

// ParseTransformSpecs parses each spec in order
func (r *TransformRegistry) ParseTransformSpecs(specs []string) ([]ProfileTransform, error) {
	transforms := make([]ProfileTransform, 0, len(specs))
	for _, spec := range specs {
		t, err := r.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

func required(params map[string]string, transform, key string) (string, error) {
	v, ok := params[key]
	if !ok {
		return "", fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	return v, nil
}

func createRaiseSalary(params map[string]string) (ProfileTransform, error) {
	v, err := required(params, "raise_salary", "pct")
	if err != nil {
		return nil, err
	}
	// a cut is a negative raise, which ParsePercent rejects
	pct, err := decimal.NewFromString(strings.TrimSuffix(v, "%"))
	if err != nil {
		return nil, fmt.Errorf("invalid pct value: %w", err)
	}
	return &RaiseSalary{Percent: pct}, nil
}

func createSetSalary(params map[string]string) (ProfileTransform, error) {
	v, err := required(params, "set_salary", "amount")
	if err != nil {
		return nil, err
	}
	amount, err := config.ParseAmount("amount", v)
	if err != nil {
		return nil, err
	}
	return &SetSalary{Amount: amount}, nil
}

func createSetDeductions(params map[string]string) (ProfileTransform, error) {
	t := &SetDeductions{}
	if v, ok := params["80c"]; ok {
		amount, err := config.ParseAmount("80c", v)
		if err != nil {
			return nil, err
		}
		t.Section80C = &amount
	}
	if v, ok := params["80d"]; ok {
		amount, err := config.ParseAmount("80d", v)
		if err != nil {
			return nil, err
		}
		t.Section80D = &amount
	}
	return t, nil
}

func createSetRegime(params map[string]string) (ProfileTransform, error) {
	v, err := required(params, "set_regime", "name")
	if err != nil {
		return nil, err
	}
	return &SetRegime{Regime: v}, nil
}

func createSetPF(params map[string]string) (ProfileTransform, error) {
	v, err := required(params, "set_pf", "pct")
	if err != nil {
		return nil, err
	}
	pct, err := config.ParsePercent("pct", v)
	if err != nil {
		return nil, err
	}
	return &SetPF{Percent: pct}, nil
}

func createSetSIP(params map[string]string) (ProfileTransform, error) {
	var sip domain.SIPParameters
	v, err := required(params, "set_sip", "monthly")
	if err != nil {
		return nil, err
	}
	if sip.MonthlyContribution, err = config.ParseAmount("monthly", v); err != nil {
		return nil, err
	}
	if v, ok := params["rate"]; ok {
		if sip.AnnualReturnPct, err = config.ParsePercent("rate", v); err != nil {
			return nil, err
		}
	}
	if v, ok := params["years"]; ok {
		if sip.DurationYears, err = config.ParseYears("years", v); err != nil {
			return nil, err
		}
	}
	return &SetSIP{SIP: sip}, nil
}

func createSetSavingsGoal(params map[string]string) (ProfileTransform, error) {
	v, err := required(params, "set_savings_goal", "monthly")
	if err != nil {
		return nil, err
	}
	amount, err := config.ParseAmount("monthly", v)
	if err != nil {
		return nil, err
	}
	return &SetSavingsGoal{Monthly: amount}, nil
}
