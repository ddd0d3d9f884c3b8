package models

import "testing"

func TestFederationCovers(t *testing.T) {
	taekwondoOnly := &Federation{MartialArts: []MartialArt{ArtTaekwondo}}
	if !taekwondoOnly.Covers(ArtTaekwondo) {
		t.Error("expected direct coverage")
	}
	if taekwondoOnly.Covers(ArtHapkido) {
		t.Error("expected hapkido to be uncovered")
	}

	general := &Federation{MartialArts: []MartialArt{ArtGeneral}}
	for _, art := range StudentMartialArts {
		if !general.Covers(art) {
			t.Errorf("general federation must cover %s", art)
		}
	}

	empty := &Federation{}
	if empty.Covers(ArtTaekwondo) {
		t.Error("federation without disciplines covers nothing")
	}
}
