package gbm

import (
	"fmt"
	"strconv"

	"github.com/go-yaml/yaml"
	"github.com/spf13/pflag"
)

type options struct {
	options []ParamOption
	err     error
}

// FlagSet returns the flags understood by ParseArgs.  Programs embedding the generator can merge it into their own
// flag set with AddFlagSet.
func FlagSet() *pflag.FlagSet {
	pf := pflag.NewFlagSet("gbm", pflag.ContinueOnError)
	pf.Float64("drift", DefaultDrift, "Expected annualized return of the simulated price")
	pf.Float64("volatility", DefaultVolatility, "Annualized standard deviation of returns")
	pf.Float64("years", DefaultYears, "Total horizon of the path in years")
	pf.Int("steps", DefaultSteps, "Number of discrete steps.  The path has steps+1 prices.")
	return pf
}

// ParseArgs builds simulation parameters from command line style arguments, e.g. --drift 0.1 --steps 252.  Flags
// that are not set keep their defaults.
func ParseArgs(args []string) (Params, error) {
	return parse(args, FlagSet())
}

func parse(args []string, pf *pflag.FlagSet) (Params, error) {
	o := options{}
	if err := pf.ParseAll(args, parseFlag(&o)); err != nil {
		return Params{}, err
	}
	if o.err != nil {
		return Params{}, o.err
	}
	if len(pf.Args()) > 0 {
		return Params{}, fmt.Errorf("unexpected arguments: %v", pf.Args())
	}
	return build(o.options)
}

func parseFlag(o *options) func(*pflag.Flag, string) error {
	return func(flag *pflag.Flag, value string) error {
		option, err := handleOption(flag.Name, value)
		if err != nil {
			o.err = err
			return err
		}
		o.options = append(o.options, option)
		return nil
	}
}

func handleOption(name string, value string) (ParamOption, error) {
	switch name {
	case "drift", "volatility", "years":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("could not convert %s to a number: %s", name, value)
		}
		switch name {
		case "drift":
			return Drift(f), nil
		case "volatility":
			return Volatility(f), nil
		default:
			return Years(f), nil
		}
	case "steps":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("could not convert steps to an integer: %s", value)
		}
		return Steps(n), nil
	default:
		return nil, fmt.Errorf("unknown option: %s", name)
	}
}

// ParseYAML builds simulation parameters from a YAML document with the keys drift, volatility, years and steps.
// Missing keys keep their defaults and unknown keys are an error.
func ParseYAML(data []byte) (Params, error) {
	cfg := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Params{}, fmt.Errorf("could not parse parameters: %v", err)
	}

	var opts []ParamOption
	for k, v := range cfg {
		var value string
		switch v := v.(type) {
		case int:
			value = strconv.Itoa(v)
		case float64:
			value = strconv.FormatFloat(v, 'g', -1, 64)
		case string:
			value = v
		default:
			return Params{}, fmt.Errorf("could not process config key %s, unknown type", k)
		}
		opt, err := handleOption(k, value)
		if err != nil {
			return Params{}, err
		}
		opts = append(opts, opt)
	}
	return build(opts)
}

func build(opts []ParamOption) (Params, error) {
	p, errs := NewParams(opts...)
	if len(errs) > 0 {
		return Params{}, errs[0]
	}
	return p, nil
}
