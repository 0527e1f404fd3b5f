package workorder

// Seed inserts the demo work orders used for local development and manual
// testing. Ids are allocated by the store as usual (1 through 4 on an empty
// store).
func Seed(s *Store) {
	s.Create("SB-XY-123", "Bremsscheiben wechseln", StatusPending, "2025-10-15")
	s.Create("KL-AA-007", "Ölwechsel", StatusInProgress, "2025-09-01")
	s.Create("SB-BB-999", "TÜV Hauptuntersuchung", StatusPending, "2025-12-20")
	s.Create("SB-XY-123", "Klimaanlage prüfen", StatusCompleted, "2025-08-10")
}
