package settings

import "github.com/arthur-debert/bombadil/pkg/dots"

// merge folds an imported fragment into the receiver, in place.
// List fields are strictly additive and never deduplicated; map fields
// are key-wise unions where the fragment's entry wins on collision.
// DotfilesDir and GpgUserID are never touched: fragments cannot carry
// them.
func (s *Settings) merge(sub *ImportedSettings) {
	s.Settings.Prehooks = append(s.Settings.Prehooks, sub.Settings.Prehooks...)
	s.Settings.Posthooks = append(s.Settings.Posthooks, sub.Settings.Posthooks...)
	s.Settings.Vars = append(s.Settings.Vars, sub.Settings.Vars...)
	s.Import = append(s.Import, sub.Import...)

	if len(sub.Settings.Dots) > 0 && s.Settings.Dots == nil {
		s.Settings.Dots = make(map[string]dots.Dot, len(sub.Settings.Dots))
	}
	for name, dot := range sub.Settings.Dots {
		s.Settings.Dots[name] = dot
	}

	if len(sub.Profiles) > 0 && s.Profiles == nil {
		s.Profiles = make(map[string]Profile, len(sub.Profiles))
	}
	for name, profile := range sub.Profiles {
		s.Profiles[name] = profile
	}
}
