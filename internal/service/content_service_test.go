package service

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sinha001/portfolio-server/internal/catalog"
	appdb "github.com/sinha001/portfolio-server/internal/db"
	"github.com/sinha001/portfolio-server/internal/kv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupKVStore(t *testing.T) (*kv.Store, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&appdb.KVEntry{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return kv.NewStore(gdb), func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestContentUpdateWritesThrough(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	svc := NewContentService(store, zerolog.Nop())

	info := svc.PersonalInfo()
	info.Name = "Edited Name"
	info.Tagline = "Edited tagline"
	if err := svc.UpdatePersonalInfo(info); err != nil {
		t.Fatalf("update personal info failed: %v", err)
	}

	if got := svc.PersonalInfo(); got.Name != "Edited Name" || got.Tagline != "Edited tagline" {
		t.Fatalf("in-memory value not updated: %+v", got)
	}

	raw, found, err := store.Get(kv.KeyPersonalInfo)
	if err != nil || !found {
		t.Fatalf("expected persisted personal info: found=%v err=%v", found, err)
	}
	var persisted catalog.PersonalInfo
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("persisted value unparsable: %v", err)
	}
	if persisted.Name != "Edited Name" {
		t.Fatalf("persisted value stale: %+v", persisted)
	}
}

func TestContentLoadOverridesDefaults(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	first := NewContentService(store, zerolog.Nop())
	projects := first.Projects()
	projects = append(projects, catalog.Project{
		ID:    "new-project",
		Title: "New Project",
		Tags:  []string{"Go"},
		Color: "blue",
		Type:  catalog.ProjectTypePublic,
	})
	if err := first.UpdateProjects(projects); err != nil {
		t.Fatalf("update projects failed: %v", err)
	}

	// A fresh service over the same store must see the override.
	second := NewContentService(store, zerolog.Nop())
	got := second.Projects()
	if len(got) != len(projects) {
		t.Fatalf("expected %d projects after reload, got %d", len(projects), len(got))
	}
	if got[len(got)-1].ID != "new-project" {
		t.Fatalf("override not loaded: %+v", got)
	}
}

func TestContentCorruptKeyKeepsDefaultForThatEntityOnly(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	first := NewContentService(store, zerolog.Nop())
	experiences := first.Experiences()[:1]
	experiences[0].Title = "Edited Title"
	if err := first.UpdateExperiences(experiences); err != nil {
		t.Fatalf("update experiences failed: %v", err)
	}

	if err := store.Set(kv.KeyProjects, "{definitely not json"); err != nil {
		t.Fatalf("corrupt projects key failed: %v", err)
	}

	second := NewContentService(store, zerolog.Nop())

	if got := second.Projects(); len(got) != len(catalog.DefaultProjects()) {
		t.Fatalf("expected default projects after corruption, got %d entries", len(got))
	}
	got := second.Experiences()
	if len(got) != 1 || got[0].Title != "Edited Title" {
		t.Fatalf("experience override lost: %+v", got)
	}
}

func TestContentSaveAllPersistsEverySection(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	svc := NewContentService(store, zerolog.Nop())
	draft := svc.Draft()
	draft.PersonalInfo.Name = "Draft Name"
	draft.Projects = draft.Projects[:1]

	if err := svc.SaveAll(draft); err != nil {
		t.Fatalf("save all failed: %v", err)
	}

	for _, key := range []string{
		kv.KeyPersonalInfo,
		kv.KeyExperiences,
		kv.KeyProjects,
		kv.KeySkillCategories,
		kv.KeyEducation,
		kv.KeyCertifications,
	} {
		if _, found, err := store.Get(key); err != nil || !found {
			t.Fatalf("expected %s persisted: found=%v err=%v", key, found, err)
		}
	}

	if got := svc.PersonalInfo(); got.Name != "Draft Name" {
		t.Fatalf("draft not applied: %+v", got)
	}
	if got := svc.Projects(); len(got) != 1 {
		t.Fatalf("expected 1 project after draft, got %d", len(got))
	}
}

func TestContentUpdateResumeFile(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	svc := NewContentService(store, zerolog.Nop())

	if err := svc.UpdateResumeFile("plain text"); err != ErrInvalidResumeFile {
		t.Fatalf("expected ErrInvalidResumeFile, got %v", err)
	}
	if svc.ResumeFile() != "" {
		t.Fatalf("rejected upload must not stick")
	}

	dataURI := "data:application/pdf;base64,JVBERi0xLjQ="
	if err := svc.UpdateResumeFile(dataURI); err != nil {
		t.Fatalf("update resume failed: %v", err)
	}
	if svc.ResumeFile() != dataURI {
		t.Fatalf("resume not stored in memory")
	}

	raw, found, err := store.Get(kv.KeyResumeFile)
	if err != nil || !found || raw != dataURI {
		t.Fatalf("resume not persisted verbatim: %q found=%v err=%v", raw, found, err)
	}

	second := NewContentService(store, zerolog.Nop())
	if second.ResumeFile() != dataURI {
		t.Fatalf("resume not restored on reload")
	}
}

func TestContentGettersReturnCopies(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	svc := NewContentService(store, zerolog.Nop())

	got := svc.Experiences()
	got[0].Title = "mutated"
	got[0].Description[0] = "mutated"

	fresh := svc.Experiences()
	if fresh[0].Title == "mutated" || fresh[0].Description[0] == "mutated" {
		t.Fatalf("getter leaked internal state")
	}
}
