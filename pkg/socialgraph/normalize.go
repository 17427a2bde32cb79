package socialgraph

// Normalize returns a copy of d in which every followers and following list
// only references users that are keys of d and were fetched. Keys are never
// added or removed and d itself is left untouched. Normalize is idempotent.
func Normalize(d Data) Data {
	out := d.Clone()
	keep := func(list []string) []string {
		if list == nil {
			return nil
		}
		kept := make([]string, 0, len(list))
		for _, u := range list {
			if d[u].Fetched() {
				kept = append(kept, u)
			}
		}
		return kept
	}
	for _, r := range out {
		r.Followers = keep(r.Followers)
		r.Following = keep(r.Following)
	}
	return out
}
