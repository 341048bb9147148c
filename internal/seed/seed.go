// Package seed bulk-loads contractors and projects from a YAML file through
// the regular use cases, so seeded data obeys the same rules as API writes.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"highwaymetric/internal/domain/entity"
	contractorUC "highwaymetric/internal/usecase/contractor"
	projectUC "highwaymetric/internal/usecase/project"
)

// File is the top-level document of a seed file.
type File struct {
	Contractors []Contractor `yaml:"contractors"`
	Projects    []Project    `yaml:"projects"`
}

type Contractor struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
}

// Project mirrors the POST /api/projects body. Dates are dd/MM/yyyy.
type Project struct {
	Name           string         `yaml:"name"`
	NHNumber       *string        `yaml:"nhNumber"`
	Lanes          *string        `yaml:"lanes"`
	TotalLength    *float64       `yaml:"totalLength"`
	State          *string        `yaml:"state"`
	Concessionaire *string        `yaml:"concessionaire"`
	Status         string         `yaml:"status"`
	LOADate        string         `yaml:"loaDate"`
	StartDate      string         `yaml:"startDate"`
	Contractor     string         `yaml:"contractor"`
	Highways       []string       `yaml:"highways"`
	Geom           map[string]any `yaml:"geom"`
}

// Parse decodes a seed file. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// Report summarises a Load run.
type Report struct {
	ContractorsCreated int
	ContractorsUpdated int
	ProjectsCreated    int
	// SkippedProjects names projects that already existed.
	SkippedProjects []string
}

type Loader struct {
	Contractors *contractorUC.Service
	Projects    *projectUC.Service
	Logger      *slog.Logger
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// Load upserts the contractors by name and then adds every project. Loading
// stops at the first error other than a duplicate project.
func (l *Loader) Load(ctx context.Context, f *File) (Report, error) {
	var rep Report

	existing, err := l.Contractors.List(ctx)
	if err != nil {
		return rep, fmt.Errorf("list contractors: %w", err)
	}
	byName := make(map[string]string, len(existing))
	for _, c := range existing {
		byName[c.Name] = c.ID
	}

	for _, c := range f.Contractors {
		name := strings.TrimSpace(c.Name)
		in := contractorUC.Input{Name: name, Description: c.Description}
		if id, ok := byName[name]; ok {
			if _, err := l.Contractors.Update(ctx, id, in); err != nil {
				return rep, fmt.Errorf("update contractor %q: %w", name, err)
			}
			rep.ContractorsUpdated++
			continue
		}
		created, err := l.Contractors.Create(ctx, in)
		if err != nil {
			return rep, fmt.Errorf("create contractor %q: %w", name, err)
		}
		byName[created.Name] = created.ID
		rep.ContractorsCreated++
	}

	for _, p := range f.Projects {
		in, err := p.input()
		if err != nil {
			return rep, err
		}
		id, err := l.Projects.AddNewProject(ctx, in)
		var dup *projectUC.DuplicateProjectError
		switch {
		case errors.As(err, &dup):
			l.logger().Info("project already exists, skipping",
				slog.String("project", p.Name),
				slog.String("existing_id", dup.ExistingID))
			rep.SkippedProjects = append(rep.SkippedProjects, p.Name)
		case err != nil:
			return rep, fmt.Errorf("seed project %q: %w", p.Name, err)
		default:
			l.logger().Debug("project seeded", slog.String("project", p.Name), slog.String("id", id))
			rep.ProjectsCreated++
		}
	}
	return rep, nil
}

func (p Project) input() (projectUC.Input, error) {
	in := projectUC.Input{
		Name:           p.Name,
		NHNumber:       p.NHNumber,
		Lanes:          p.Lanes,
		TotalLength:    p.TotalLength,
		State:          p.State,
		Concessionaire: p.Concessionaire,
		LOADate:        p.LOADate,
		StartDate:      p.StartDate,
		Contractor:     p.Contractor,
		HighwayNumbers: p.Highways,
	}
	if p.Status != "" {
		st, err := entity.ParseProjectStatus(p.Status)
		if err != nil {
			return in, fmt.Errorf("project %q: %w", p.Name, err)
		}
		in.Status = &st
	}
	if p.Geom != nil {
		raw, err := json.Marshal(p.Geom)
		if err != nil {
			return in, fmt.Errorf("project %q geom: %w", p.Name, err)
		}
		in.Geom = raw
	}
	return in, nil
}
