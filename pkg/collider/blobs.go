package collider

// BlobSet groups the traced regions of one image. Blob order matches
// discovery order during the mask scan, so two extractions of the same
// image produce identical sets.
type BlobSet struct {
	Blobs []Blob
}

// Empty reports whether the image had no usable solid regions.
func (s *BlobSet) Empty() bool {
	return len(s.Blobs) == 0
}

// Largest returns the blob enclosing the most solid pixels. Sprites known
// to be a single connected shape (a car, a character) use this to ignore
// stray specks. Ties go to the blob discovered first. The second return
// is false when the set is empty.
func (s *BlobSet) Largest() (Blob, bool) {
	if len(s.Blobs) == 0 {
		return Blob{}, false
	}
	best := s.Blobs[0]
	for _, b := range s.Blobs[1:] {
		if b.Area > best.Area {
			best = b
		}
	}
	return best, true
}
