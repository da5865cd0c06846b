// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Candidate is static reference data, immutable for the lifetime of the
// election. The set is fixed in code rather than persisted as mutable state.
type Candidate struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Slogan  string   `json:"slogan"`
	Vision  string   `json:"vision"`
	Mission []string `json:"mission"`
}

// Candidates is the fixed candidate set for this election.
var Candidates = []Candidate{
	{
		ID:     "rangga",
		Name:   "Rangga",
		Slogan: "Bersama Membangun PMR yang Lebih Baik",
		Vision: "Menjadikan PMR sebagai organisasi yang solid, profesional, dan bermanfaat bagi sekolah",
		Mission: []string{
			"Meningkatkan kualitas pelatihan anggota PMR",
			"Mengadakan kegiatan sosial secara rutin",
			"Mempererat hubungan antar anggota PMR",
			"Meningkatkan partisipasi dalam kegiatan sekolah",
		},
	},
	{
		ID:     "ghazi",
		Name:   "Ghazi",
		Slogan: "Inovasi dan Dedikasi untuk PMR Masa Depan",
		Vision: "Menciptakan PMR yang inovatif, aktif, dan memberikan dampak positif bagi lingkungan sekolah",
		Mission: []string{
			"Mengembangkan program pelatihan modern",
			"Menjalin kerjasama dengan instansi kesehatan",
			"Meningkatkan awareness kesehatan di sekolah",
			"Membangun sistem organisasi yang efektif",
		},
	},
}

// CandidateByID looks up a candidate in the fixed set.
func CandidateByID(id string) (Candidate, bool) {
	for _, c := range Candidates {
		if c.ID == id {
			return c, true
		}
	}
	return Candidate{}, false
}

// ValidCandidate reports whether id names a candidate in the fixed set.
func ValidCandidate(id string) bool {
	_, ok := CandidateByID(id)
	return ok
}

// CandidateName returns the display name for id, falling back to the raw id
// for ballots that somehow reference an unknown candidate.
func CandidateName(id string) string {
	if c, ok := CandidateByID(id); ok {
		return c.Name
	}
	return id
}
