package models

import "testing"

func TestIsStudentMartialArt(t *testing.T) {
	for _, art := range StudentMartialArts {
		if !IsStudentMartialArt(art) {
			t.Errorf("expected %s to be a student discipline", art)
		}
	}

	for _, art := range []MartialArt{ArtAll, ArtGeneral, "karate", ""} {
		if IsStudentMartialArt(art) {
			t.Errorf("expected %q to be rejected", art)
		}
	}
}

func TestIsValidBelt(t *testing.T) {
	for _, belt := range BeltLadder {
		if !IsValidBelt(belt) {
			t.Errorf("expected %s to be on the ladder", belt)
		}
	}

	if IsValidBelt("negro-7dan") {
		t.Error("expected negro-7dan to be rejected")
	}
	if IsValidBelt("") {
		t.Error("expected empty belt to be rejected")
	}
}

func TestBeltLadderOrder(t *testing.T) {
	if BeltLadder[0] != BeltBlanco {
		t.Fatalf("ladder must start at blanco, got %s", BeltLadder[0])
	}
	if BeltLadder[len(BeltLadder)-1] != BeltNegro6Dan {
		t.Fatalf("ladder must end at negro-6dan, got %s", BeltLadder[len(BeltLadder)-1])
	}
	if len(BeltLadder) != 14 {
		t.Fatalf("ladder has %d rungs, want 14", len(BeltLadder))
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range []Category{CategoryChild, CategoryJuvenile, CategoryCadet, CategoryAdult} {
		if !IsValidCategory(c) {
			t.Errorf("expected %s to be valid", c)
		}
	}
	if IsValidCategory("senior") {
		t.Error("expected senior to be rejected")
	}
}

func TestIsValidEventType(t *testing.T) {
	for _, et := range []EventType{EventCompetition, EventExam, EventTraining, EventGeneral} {
		if !IsValidEventType(et) {
			t.Errorf("expected %s to be valid", et)
		}
	}
	if IsValidEventType("seminar") {
		t.Error("expected seminar to be rejected")
	}
}
