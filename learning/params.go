package learning

import (
	"fmt"
	"github.com/pkg/errors"
	"math"
	"strconv"
	"strings"
)

// Param is a single named estimator parameter.
type Param struct {
	Name  string
	Value interface{}
}

// Params is an ordered set of estimator parameters. The order is the order parameters were given in.
type Params []Param

// Get returns the value of the named parameter.
func (p Params) Get(name string) (interface{}, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return nil, false
}

// Set returns a copy of p with the named parameter set to value. The position of an existing parameter is kept.
func (p Params) Set(name string, value interface{}) Params {
	c := make(Params, len(p), len(p)+1)
	copy(c, p)
	for i := range c {
		if c[i].Name == name {
			c[i].Value = value
			return c
		}
	}
	return append(c, Param{Name: name, Value: value})
}

// String renders the parameters the way they would be written as Go literals, e.g. max_depth=1, splitter="random".
func (p Params) String() string {
	parts := make([]string, len(p))
	for i, param := range p {
		parts[i] = fmt.Sprintf("%s=%s", param.Name, Repr(param.Value))
	}
	return strings.Join(parts, ", ")
}

// Repr is the canonical representation of a parameter value: strings are quoted, nil is nil.
func Repr(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	}
	return fmt.Sprintf("%v", v)
}

// allow fails if any parameter is not one of the names an estimator understands.
func (p Params) allow(estimator string, names ...string) error {
	for _, param := range p {
		known := false
		for _, name := range names {
			if param.Name == name {
				known = true
				break
			}
		}
		if !known {
			return errors.Errorf("%s got an unexpected parameter %q", estimator, param.Name)
		}
	}
	return nil
}

// Int reads an integer parameter. Missing and nil parameters take the default value.
func (p Params) Int(name string, def int) (int, error) {
	v, ok := p.Get(name)
	if !ok || v == nil {
		return def, nil
	}
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case uint:
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return int(x), nil
	case uint64:
		return int(x), nil
	case float64:
		if x == math.Trunc(x) {
			return int(x), nil
		}
	}
	return 0, errors.Errorf("parameter %s must be an integer, got %s", name, Repr(v))
}

// Float reads a numeric parameter.
func (p Params) Float(name string, def float64) (float64, error) {
	v, ok := p.Get(name)
	if !ok || v == nil {
		return def, nil
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	}
	if i, err := p.Int(name, 0); err == nil {
		return float64(i), nil
	}
	return 0, errors.Errorf("parameter %s must be a number, got %s", name, Repr(v))
}

// Bool reads a boolean parameter.
func (p Params) Bool(name string, def bool) (bool, error) {
	v, ok := p.Get(name)
	if !ok || v == nil {
		return def, nil
	}
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, errors.Errorf("parameter %s must be a bool, got %s", name, Repr(v))
}

// Choice reads a string parameter and checks it is one of the choices, if any are given.
func (p Params) Choice(name string, def string, choices ...string) (string, error) {
	v, ok := p.Get(name)
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Errorf("parameter %s must be a string, got %s", name, Repr(v))
	}
	if len(choices) == 0 {
		return s, nil
	}
	for _, c := range choices {
		if s == c {
			return s, nil
		}
	}
	return "", errors.Errorf("parameter %s must be one of %s, got %q", name, strings.Join(choices, ", "), s)
}

// Sweep is a family of estimator configurations differing only in the value of one parameter.
type Sweep struct {
	// Param is the name of the parameter being varied.
	Param string
	// Values are the values Param takes, in order.
	Values []interface{}
	// Fixed are the parameters shared by every configuration.
	Fixed Params
}

// Configuration is the effective parameter set of the i-th configuration: the varying parameter first, then the
// fixed parameters in order. The varying value takes precedence over a fixed parameter of the same name.
func (s Sweep) Configuration(i int) Params {
	params := make(Params, 1, len(s.Fixed)+1)
	params[0] = Param{Name: s.Param, Value: s.Values[i]}
	for _, p := range s.Fixed {
		if p.Name == s.Param {
			continue
		}
		params = append(params, p)
	}
	return params
}

// Describe renders the i-th configuration for progress messages. The varying value is printed as is, the fixed
// parameters use their canonical representation.
func (s Sweep) Describe(i int) string {
	params := s.Configuration(i)
	parts := make([]string, len(params))
	parts[0] = fmt.Sprintf("%s=%v", s.Param, s.Values[i])
	for j, p := range params[1:] {
		parts[j+1] = fmt.Sprintf("%s=%s", p.Name, Repr(p.Value))
	}
	return strings.Join(parts, ", ")
}

// Labels renders each value of the varying parameter.
func (s Sweep) Labels() []string {
	return ValueLabels(s.Values)
}

// ValueLabels renders parameter values as they appear on chart ticks.
func ValueLabels(values []interface{}) []string {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = fmt.Sprintf("%v", v)
	}
	return labels
}
