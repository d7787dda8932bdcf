package main

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/calebcase/finmath"
	"github.com/calebcase/finmath/integer"
	"github.com/calebcase/finmath/lending"
	"github.com/calebcase/finmath/schedule"
)

// load reads a YAML file into out after expanding ${VAR} references.
func load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	err = yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), out)
	if err != nil {
		return finmath.MalformedInput.Wrap(err)
	}

	return nil
}

// Grant is a single schedule entry of a grants file.
type Grant struct {
	Denom   string           `yaml:"denom"`
	Start   time.Time        `yaml:"start"`
	End     time.Time        `yaml:"end"`
	Amount  integer.Uint128  `yaml:"amount"`
	Release schedule.Release `yaml:"release"`
}

// Schedule returns the grant's schedule.
func (g Grant) Schedule() schedule.Schedule {
	return schedule.Schedule{
		Start:   g.Start,
		End:     g.End,
		Amount:  g.Amount,
		Release: g.Release,
	}
}

// Grants is the contents of a grants file.
type Grants struct {
	Grants []Grant `yaml:"grants"`
}

// LoadGrants reads and validates a grants file.
func LoadGrants(path string) (*Grants, error) {
	var gs Grants

	err := load(path, &gs)
	if err != nil {
		return nil, err
	}

	err = gs.Validate()
	if err != nil {
		return nil, err
	}

	return &gs, nil
}

// Validate checks every grant.
func (gs *Grants) Validate() error {
	if len(gs.Grants) == 0 {
		return finmath.InvalidConfiguration.New("no grants")
	}

	for i, g := range gs.Grants {
		if g.Denom == "" {
			return finmath.InvalidConfiguration.New("grant %d: missing denom", i)
		}

		err := g.Schedule().Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// ByDenom groups the schedules by lower cased denom.
func (gs *Grants) ByDenom() map[string]schedule.Schedules {
	m := map[string]schedule.Schedules{}

	for _, g := range gs.Grants {
		denom := strings.ToLower(g.Denom)
		m[denom] = append(m[denom], g.Schedule())
	}

	return m
}

// AllowList is the contents of an allow-list file.
type AllowList struct {
	Leaves []string `yaml:"leaves"`
}

// LoadAllowList reads an allow-list file. Duplicate leaves are rejected.
func LoadAllowList(path string) (*AllowList, error) {
	var al AllowList

	err := load(path, &al)
	if err != nil {
		return nil, err
	}

	if len(al.Leaves) == 0 {
		return nil, finmath.InvalidConfiguration.New("%s: no leaves", path)
	}

	seen := map[string]bool{}
	for _, leaf := range al.Leaves {
		if seen[leaf] {
			return nil, finmath.InvalidConfiguration.New("%s: duplicate leaf %q", path, leaf)
		}

		seen[leaf] = true
	}

	return &al, nil
}

// CurveFile holds exactly one interest curve.
type CurveFile struct {
	Linear      *lending.Linear      `yaml:"linear"`
	Exponential *lending.Exponential `yaml:"exponential"`
}

// LoadCurve reads and validates a curve file.
func LoadCurve(path string) (lending.Curve, error) {
	var cf CurveFile

	err := load(path, &cf)
	if err != nil {
		return nil, err
	}

	switch {
	case cf.Linear != nil && cf.Exponential == nil:
		return *cf.Linear, cf.Linear.Validate()
	case cf.Exponential != nil && cf.Linear == nil:
		return *cf.Exponential, cf.Exponential.Validate()
	}

	return nil, finmath.InvalidConfiguration.New("%s: want exactly one of linear or exponential", path)
}
