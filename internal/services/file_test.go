package services_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mohamedahmed66972007/test2025/internal/models"
	"github.com/mohamedahmed66972007/test2025/internal/services"
)

func newFileService(t *testing.T) (*services.FileService, string) {
	t.Helper()
	dir := t.TempDir()
	svc, err := services.NewFileService(newTestDB(t), dir)
	if err != nil {
		t.Fatalf("NewFileService: %v", err)
	}
	return svc, dir
}

func TestCreateFileWritesDisk(t *testing.T) {
	svc, dir := newFileService(t)

	file, err := svc.CreateFile(&services.CreateFileRequest{
		Title:    "Algebra notes",
		Subject:  models.SubjectMath,
		Semester: models.SemesterFirst,
		FileName: "notes.pdf",
	}, strings.NewReader("pdf bytes"))
	if err != nil {
		t.Fatalf("CreateFile: %v", err)
	}

	if !strings.HasPrefix(file.FilePath, "/uploads/") {
		t.Errorf("file path %q not under /uploads/", file.FilePath)
	}
	if file.FileName != "notes.pdf" {
		t.Errorf("original name = %q, want notes.pdf", file.FileName)
	}

	stored := filepath.Join(dir, filepath.Base(file.FilePath))
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "pdf bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestCreateFileValidation(t *testing.T) {
	svc, _ := newFileService(t)

	tests := []struct {
		name string
		req  services.CreateFileRequest
	}{
		{"blank title", services.CreateFileRequest{Subject: models.SubjectMath, Semester: models.SemesterFirst, FileName: "a.pdf"}},
		{"bad subject", services.CreateFileRequest{Title: "t", Subject: "history", Semester: models.SemesterFirst, FileName: "a.pdf"}},
		{"bad semester", services.CreateFileRequest{Title: "t", Subject: models.SubjectMath, Semester: "third", FileName: "a.pdf"}},
		{"blank file name", services.CreateFileRequest{Title: "t", Subject: models.SubjectMath, Semester: models.SemesterFirst}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateFile(&tt.req, strings.NewReader("x")); !errors.Is(err, services.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestGetFilesFilters(t *testing.T) {
	svc, _ := newFileService(t)

	seed := []services.CreateFileRequest{
		{Title: "math 1", Subject: models.SubjectMath, Semester: models.SemesterFirst, FileName: "m1.pdf"},
		{Title: "math 2", Subject: models.SubjectMath, Semester: models.SemesterSecond, FileName: "m2.pdf"},
		{Title: "bio 1", Subject: models.SubjectBiology, Semester: models.SemesterFirst, FileName: "b1.pdf"},
	}
	for i := range seed {
		if _, err := svc.CreateFile(&seed[i], strings.NewReader("x")); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	all, err := svc.GetFiles("", "")
	if err != nil || len(all) != 3 {
		t.Fatalf("unfiltered: got %d files (err %v), want 3", len(all), err)
	}
	allKeyword, err := svc.GetFiles("all", "all")
	if err != nil || len(allKeyword) != 3 {
		t.Fatalf(`"all" filter: got %d files (err %v), want 3`, len(allKeyword), err)
	}
	math, err := svc.GetFiles(models.SubjectMath, "")
	if err != nil || len(math) != 2 {
		t.Fatalf("subject filter: got %d files (err %v), want 2", len(math), err)
	}
	mathFirst, err := svc.GetFiles(models.SubjectMath, models.SemesterFirst)
	if err != nil || len(mathFirst) != 1 {
		t.Fatalf("combined filter: got %d files (err %v), want 1", len(mathFirst), err)
	}
	if mathFirst[0].Title != "math 1" {
		t.Errorf("combined filter returned %q", mathFirst[0].Title)
	}
}

func TestDeleteFileRemovesDisk(t *testing.T) {
	svc, dir := newFileService(t)

	file, err := svc.CreateFile(&services.CreateFileRequest{
		Title:    "notes",
		Subject:  models.SubjectEnglish,
		Semester: models.SemesterSecond,
		FileName: "n.pdf",
	}, strings.NewReader("x"))
	if err != nil {
		t.Fatalf("CreateFile: %v", err)
	}

	if err := svc.DeleteFile(file.ID); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}

	if _, err := svc.GetFile(file.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("record still present after delete: %v", err)
	}
	stored := filepath.Join(dir, filepath.Base(file.FilePath))
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Errorf("disk file still present after delete: %v", err)
	}
}

func TestDeleteFileNotFound(t *testing.T) {
	svc, _ := newFileService(t)

	if err := svc.DeleteFile(12345); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
