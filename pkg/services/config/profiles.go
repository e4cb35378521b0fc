package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile names one solved case the CLI can report on.
type Profile struct {
	Name       string
	CasePath   string
	CaseName   string
	ReportsDir string
}

// Registry resolves named profiles from an ini file (one section per solved
// case, keyed by case_path / case_name / reports_dir).
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type profileRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &profileRegistry{cfg: cfg}, nil
}

func (pr *profileRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range pr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (pr *profileRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	if !pr.cfg.HasSection(name) {
		return nil, fmt.Errorf("profile %s not found", name)
	}
	section := pr.cfg.Section(name)

	casePath := section.Key("case_path").String()
	if casePath == "" {
		return nil, fmt.Errorf("profile %s has no case_path", name)
	}

	return &Profile{
		Name:       name,
		CasePath:   casePath,
		CaseName:   section.Key("case_name").MustString(DefaultSettings().CaseName),
		ReportsDir: section.Key("reports_dir").MustString(DefaultSettings().ReportsDir),
	}, nil
}
