package socialgraph

import (
	"encoding/json"
	"slices"
)

// Record holds what is known about one user.
//
// A nil Followers slice means the user was never fetched; it is only known
// because someone else's list references it. A non-nil empty slice means the
// user was fetched and has no followers.
type Record struct {
	Followers []string
	Following []string
	AvatarURL string
}

// Fetched reports whether the user's lists were retrieved from the API.
func (r *Record) Fetched() bool { return r != nil && r.Followers != nil }

// MarshalJSON writes only the attributes that are present. Empty lists are
// kept as [] so the fetched marker survives a round trip.
func (r Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 3)
	if r.Followers != nil {
		m["followers"] = r.Followers
	}
	if r.Following != nil {
		m["following"] = r.Following
	}
	if r.AvatarURL != "" {
		m["avatar_url"] = r.AvatarURL
	}
	return json.Marshal(m)
}

// UnmarshalJSON distinguishes an absent list (nil) from an empty one.
func (r *Record) UnmarshalJSON(b []byte) error {
	var raw struct {
		Followers *[]string `json:"followers"`
		Following *[]string `json:"following"`
		AvatarURL *string   `json:"avatar_url"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = Record{}
	if raw.Followers != nil {
		r.Followers = nonNil(*raw.Followers)
	}
	if raw.Following != nil {
		r.Following = nonNil(*raw.Following)
	}
	if raw.AvatarURL != nil {
		r.AvatarURL = *raw.AvatarURL
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func cloneList(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}

// Data maps usernames to their records. Keys are exact, case-sensitive
// GitHub logins of users that were explicitly fetched or loaded.
type Data map[string]*Record

// GetOrCreate returns the record for username, inserting an empty one first
// if needed.
func (d Data) GetOrCreate(username string) *Record {
	r, ok := d[username]
	if !ok || r == nil {
		r = &Record{}
		d[username] = r
	}
	return r
}

// Usernames returns the keys in sorted order.
func (d Data) Usernames() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Referenced returns the sorted usernames that appear in some followers or
// following list but are not keys themselves.
func (d Data) Referenced() []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range d {
		if r == nil {
			continue
		}
		for _, lists := range [][]string{r.Followers, r.Following} {
			for _, u := range lists {
				if _, isKey := d[u]; isKey || seen[u] {
					continue
				}
				seen[u] = true
				names = append(names, u)
			}
		}
	}
	slices.Sort(names)
	return names
}

// Clone returns a deep copy of d.
func (d Data) Clone() Data {
	out := make(Data, len(d))
	for name, r := range d {
		if r == nil {
			out[name] = &Record{}
			continue
		}
		out[name] = &Record{
			Followers: cloneList(r.Followers),
			Following: cloneList(r.Following),
			AvatarURL: r.AvatarURL,
		}
	}
	return out
}

// Equal reports whether d and other have the same keys and records,
// including list order and the fetched marker.
func (d Data) Equal(other Data) bool {
	if len(d) != len(other) {
		return false
	}
	for name, r := range d {
		o, ok := other[name]
		if !ok {
			return false
		}
		if r == nil {
			r = &Record{}
		}
		if o == nil {
			o = &Record{}
		}
		if (r.Followers == nil) != (o.Followers == nil) || (r.Following == nil) != (o.Following == nil) {
			return false
		}
		if !slices.Equal(r.Followers, o.Followers) || !slices.Equal(r.Following, o.Following) || r.AvatarURL != o.AvatarURL {
			return false
		}
	}
	return true
}
