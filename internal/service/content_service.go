package service

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sinha001/portfolio-server/internal/catalog"
	"github.com/sinha001/portfolio-server/internal/kv"
)

// ErrInvalidResumeFile is returned when an uploaded resume is not a data URI.
var ErrInvalidResumeFile = errors.New("resume file must be a data URI")

// ContentService is the single source of truth for editable portfolio
// content. Every entity starts from its catalog default, gets overlaid with a
// persisted override at construction, and is written through to the key-value
// store on every update. A write that fails leaves the in-memory value
// untouched, so memory and storage never diverge.
type ContentService struct {
	store *kv.Store
	log   zerolog.Logger

	mu              sync.RWMutex
	personalInfo    catalog.PersonalInfo
	experiences     []catalog.Experience
	projects        []catalog.Project
	skillCategories []catalog.SkillCategory
	education       []catalog.Education
	certifications  []catalog.Certification
	repositories    []catalog.Repository
	blogPosts       []catalog.BlogPost
	resumeFile      string
}

// ContentDraft bundles the editable sections the admin panel commits in one
// save action.
type ContentDraft struct {
	PersonalInfo    catalog.PersonalInfo    `json:"personalInfo"`
	Experiences     []catalog.Experience    `json:"experiences"`
	Projects        []catalog.Project       `json:"projects"`
	SkillCategories []catalog.SkillCategory `json:"skillCategories"`
	Education       []catalog.Education     `json:"education"`
	Certifications  []catalog.Certification `json:"certifications"`
}

// NewContentService constructs the service and synchronously loads persisted
// overrides. A corrupt override for one entity keeps that entity at its
// default and is logged; it never fails construction.
func NewContentService(store *kv.Store, log zerolog.Logger) *ContentService {
	s := &ContentService{
		store:           store,
		log:             log,
		personalInfo:    catalog.DefaultPersonalInfo(),
		experiences:     catalog.DefaultExperiences(),
		projects:        catalog.DefaultProjects(),
		skillCategories: catalog.DefaultSkillCategories(),
		education:       catalog.DefaultEducation(),
		certifications:  catalog.DefaultCertifications(),
		repositories:    catalog.DefaultRepositories(),
		blogPosts:       catalog.SampleBlogPosts(),
	}
	s.load()
	return s
}

func (s *ContentService) load() {
	loadOverride(s, kv.KeyPersonalInfo, &s.personalInfo)
	loadOverride(s, kv.KeyExperiences, &s.experiences)
	loadOverride(s, kv.KeyProjects, &s.projects)
	loadOverride(s, kv.KeySkillCategories, &s.skillCategories)
	loadOverride(s, kv.KeyEducation, &s.education)
	loadOverride(s, kv.KeyCertifications, &s.certifications)
	loadOverride(s, kv.KeyRepositories, &s.repositories)
	loadOverride(s, kv.KeyBlogPosts, &s.blogPosts)

	raw, ok, err := s.store.Get(kv.KeyResumeFile)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Str("key", kv.KeyResumeFile).Msg("skipping persisted resume")
	case ok && strings.HasPrefix(raw, "data:"):
		s.resumeFile = raw
	case ok:
		s.log.Warn().Str("key", kv.KeyResumeFile).Msg("discarding malformed persisted resume")
	}
}

// loadOverride decodes a persisted override into a scratch value first so a
// corrupt record cannot half-fill the live default.
func loadOverride[T any](s *ContentService, key string, target *T) {
	var scratch T
	found, err := s.store.GetJSON(key, &scratch)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("keeping default content")
		return
	}
	if found {
		*target = scratch
	}
}

// persistThenSet marshals and writes before touching memory; the in-memory
// value only changes once the write sticks.
func persistThenSet[T any](s *ContentService, key string, value T, target *T) error {
	if err := s.store.SetJSON(key, value); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	s.mu.Lock()
	*target = value
	s.mu.Unlock()
	return nil
}

// PersonalInfo returns a copy of the profile record.
func (s *ContentService) PersonalInfo() catalog.PersonalInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info := s.personalInfo
	info.Social = maps.Clone(info.Social)
	info.Stats = maps.Clone(info.Stats)
	info.TechStack = slices.Clone(info.TechStack)
	return info
}

// Experiences returns a copy of the work history.
func (s *ContentService) Experiences() []catalog.Experience {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.experiences)
	for i := range out {
		out[i].Description = slices.Clone(out[i].Description)
	}
	return out
}

// Projects returns a copy of the project list.
func (s *ContentService) Projects() []catalog.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.projects)
	for i := range out {
		out[i].Tags = slices.Clone(out[i].Tags)
	}
	return out
}

// SkillCategories returns a copy of the skill groups.
func (s *ContentService) SkillCategories() []catalog.SkillCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.skillCategories)
	for i := range out {
		out[i].Skills = slices.Clone(out[i].Skills)
	}
	return out
}

// Education returns a copy of the education history.
func (s *ContentService) Education() []catalog.Education {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.education)
	for i := range out {
		out[i].Subjects = slices.Clone(out[i].Subjects)
	}
	return out
}

// Certifications returns a copy of the certification list.
func (s *ContentService) Certifications() []catalog.Certification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.certifications)
}

// Repositories returns a copy of the repository showcase.
func (s *ContentService) Repositories() []catalog.Repository {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.repositories)
}

// BlogPosts returns a copy of the stored blog post list.
func (s *ContentService) BlogPosts() []catalog.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.blogPosts)
	for i := range out {
		out[i].Categories = slices.Clone(out[i].Categories)
	}
	return out
}

// ResumeFile returns the stored resume data URI, empty when none uploaded.
func (s *ContentService) ResumeFile() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resumeFile
}

// UpdatePersonalInfo replaces the profile record and writes it through.
func (s *ContentService) UpdatePersonalInfo(info catalog.PersonalInfo) error {
	return persistThenSet(s, kv.KeyPersonalInfo, info, &s.personalInfo)
}

// UpdateExperiences replaces the work history and writes it through.
func (s *ContentService) UpdateExperiences(items []catalog.Experience) error {
	return persistThenSet(s, kv.KeyExperiences, items, &s.experiences)
}

// UpdateProjects replaces the project list and writes it through.
func (s *ContentService) UpdateProjects(items []catalog.Project) error {
	return persistThenSet(s, kv.KeyProjects, items, &s.projects)
}

// UpdateSkillCategories replaces the skill groups and writes them through.
func (s *ContentService) UpdateSkillCategories(items []catalog.SkillCategory) error {
	return persistThenSet(s, kv.KeySkillCategories, items, &s.skillCategories)
}

// UpdateEducation replaces the education history and writes it through.
func (s *ContentService) UpdateEducation(items []catalog.Education) error {
	return persistThenSet(s, kv.KeyEducation, items, &s.education)
}

// UpdateCertifications replaces the certification list and writes it through.
func (s *ContentService) UpdateCertifications(items []catalog.Certification) error {
	return persistThenSet(s, kv.KeyCertifications, items, &s.certifications)
}

// UpdateBlogPosts replaces the stored blog post list and writes it through.
func (s *ContentService) UpdateBlogPosts(items []catalog.BlogPost) error {
	return persistThenSet(s, kv.KeyBlogPosts, items, &s.blogPosts)
}

// UpdateResumeFile stores the uploaded resume. The value is kept as a plain
// string, not JSON-wrapped.
func (s *ContentService) UpdateResumeFile(dataURI string) error {
	if !strings.HasPrefix(dataURI, "data:") {
		return ErrInvalidResumeFile
	}
	if err := s.store.Set(kv.KeyResumeFile, dataURI); err != nil {
		return fmt.Errorf("persist %s: %w", kv.KeyResumeFile, err)
	}
	s.mu.Lock()
	s.resumeFile = dataURI
	s.mu.Unlock()
	return nil
}

// SaveAll commits a full admin draft in one pass. The first failing write
// aborts and is reported; keys already written in this batch stay written.
func (s *ContentService) SaveAll(draft ContentDraft) error {
	if err := s.UpdatePersonalInfo(draft.PersonalInfo); err != nil {
		return err
	}
	if err := s.UpdateExperiences(draft.Experiences); err != nil {
		return err
	}
	if err := s.UpdateProjects(draft.Projects); err != nil {
		return err
	}
	if err := s.UpdateSkillCategories(draft.SkillCategories); err != nil {
		return err
	}
	if err := s.UpdateEducation(draft.Education); err != nil {
		return err
	}
	return s.UpdateCertifications(draft.Certifications)
}

// Draft snapshots the editable sections for the admin edit screen.
func (s *ContentService) Draft() ContentDraft {
	return ContentDraft{
		PersonalInfo:    s.PersonalInfo(),
		Experiences:     s.Experiences(),
		Projects:        s.Projects(),
		SkillCategories: s.SkillCategories(),
		Education:       s.Education(),
		Certifications:  s.Certifications(),
	}
}
