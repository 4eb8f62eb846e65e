package resource

import (
	"testing"

	pdfcore "github.com/Conan-Kudo/capypdf"
	"github.com/Conan-Kudo/capypdf/color"
)

func TestAddLabSpaceResolves(t *testing.T) {
	reg, _ := newTestRegistry(t)
	id, err := reg.AddLabSpace(color.DefaultLabColorSpace(0))
	if err != nil {
		t.Fatal(err)
	}
	num, err := reg.LabObjectNumber(id)
	if err != nil {
		t.Fatal(err)
	}
	if num <= 0 {
		t.Errorf("LabObjectNumber() = %d, want positive", num)
	}
}

func TestLabObjectNumberUnknownID(t *testing.T) {
	reg, _ := newTestRegistry(t)
	if _, err := reg.LabObjectNumber(pdfcore.LabSpaceID(1)); err == nil {
		t.Fatal("LabObjectNumber(unknown): want error, got nil")
	}
}

func TestICCObjectNumberUnknownID(t *testing.T) {
	reg, _ := newTestRegistry(t)
	if _, err := reg.ICCObjectNumber(pdfcore.ICCSpaceID(1)); err == nil {
		t.Fatal("ICCObjectNumber(unknown): want error, got nil")
	}
}

func TestLoadICCRejectsInvalidProfile(t *testing.T) {
	reg, _ := newTestRegistry(t)
	if _, err := reg.LoadICC([]byte("garbage"), 3); err == nil {
		t.Fatal("LoadICC(garbage): want error, got nil")
	}
}
