package menu

import (
	"fmt"
	"sort"
	"strings"
)

// blocklist holds operation names that never surface as menu options,
// whatever the target's table declares.
var blocklist = map[string]struct{}{
	"run":       {},
	"wait":      {},
	"equals":    {},
	"toString":  {},
	"hashCode":  {},
	"getClass":  {},
	"notify":    {},
	"notifyAll": {},
}

// OptionSet holds the selectable entries of one menu: operations discovered
// from a target, keyed by display label, plus caller-declared custom
// options. Entry numbers are never stored; a number is always the 1-based
// rank of the label in the current sorted order, regular options first,
// custom options continuing the sequence. The exit number is derived the
// same way, so no mutation can leave a stale number behind.
type OptionSet struct {
	// methods maps display label to discovered operation.
	methods map[string]Operation

	// customs maps display label to the marker name it was declared with.
	customs map[string]string
}

// NewOptionSet returns an empty set.
func NewOptionSet() *OptionSet {
	return &OptionSet{
		methods: make(map[string]Operation),
		customs: make(map[string]string),
	}
}

// Discover rebuilds the regular options from the target's capability
// table. Skipped entries: names with the accessor prefixes "get" or "set",
// blocklisted names, hidden names, and names already claimed by a custom
// option. Survivors keep their operation name as the initial label. A nil
// target empties the regular options.
func (s *OptionSet) Discover(target Target, hidden []string) {
	s.methods = make(map[string]Operation)
	if target == nil {
		return
	}

	hiddenSet := make(map[string]struct{}, len(hidden))
	for _, name := range hidden {
		hiddenSet[name] = struct{}{}
	}

	for _, op := range target.Operations() {
		if strings.HasPrefix(op.Name, "get") || strings.HasPrefix(op.Name, "set") {
			continue
		}
		if _, blocked := blocklist[op.Name]; blocked {
			continue
		}
		if _, ok := hiddenSet[op.Name]; ok {
			continue
		}
		if _, taken := s.customs[op.Name]; taken {
			continue
		}
		s.methods[op.Name] = op
	}
}

// SetCustomOptions replaces the custom options, one entry per name with the
// name as both label and marker. Regular options are not re-filtered: name
// collisions are resolved at discovery time only.
func (s *OptionSet) SetCustomOptions(names []string) {
	s.customs = make(map[string]string, len(names))
	for _, name := range names {
		s.customs[name] = name
	}
}

// Labels returns the regular option labels in display order.
func (s *OptionSet) Labels() []string {
	return sortedKeys(s.methods)
}

// CustomLabels returns the custom option labels in display order.
func (s *OptionSet) CustomLabels() []string {
	return sortedKeys(s.customs)
}

// Len returns the number of regular options.
func (s *OptionSet) Len() int {
	return len(s.methods)
}

// CustomLen returns the number of custom options.
func (s *OptionSet) CustomLen() int {
	return len(s.customs)
}

// Exit returns the selection number that closes the menu: one past all
// entries when custom options exist, the regular count otherwise.
func (s *OptionSet) Exit() int {
	if len(s.customs) > 0 {
		return len(s.methods) + len(s.customs) + 1
	}
	return len(s.methods)
}

// OperationAt resolves the regular operation at the given 1-based display
// rank. Ranks in the custom or exit range report false.
func (s *OptionSet) OperationAt(rank int) (Operation, bool) {
	labels := s.Labels()
	if rank < 1 || rank > len(labels) {
		return Operation{}, false
	}
	return s.methods[labels[rank-1]], true
}

// CustomAt resolves the custom option at the given 1-based display rank.
// Custom options occupy the ranks right after the regular ones, so the
// first custom sits at Len()+1. Ranks outside that range report false.
func (s *OptionSet) CustomAt(rank int) (string, bool) {
	customs := s.CustomLabels()
	idx := rank - len(s.methods) - 1
	if idx < 0 || idx >= len(customs) {
		return "", false
	}
	return customs[idx], true
}

// RenameMethod relabels one regular option.
func (s *OptionSet) RenameMethod(oldLabel, newLabel string) error {
	return renameEntry(s.methods, oldLabel, newLabel)
}

// RenameCustom relabels one custom option. Only the display label moves;
// the marker it was declared with stays.
func (s *OptionSet) RenameCustom(oldLabel, newLabel string) error {
	return renameEntry(s.customs, oldLabel, newLabel)
}

// RenameMethods applies a complete old-to-new relabeling of the regular
// options as one unit. The map must cover every current label exactly.
func (s *OptionSet) RenameMethods(renames map[string]string) error {
	if err := validateRenames(s.methods, renames); err != nil {
		return err
	}

	next := make(map[string]Operation, len(s.methods))
	for oldLabel, op := range s.methods {
		next[renames[oldLabel]] = op
	}
	s.methods = next
	return nil
}

// RenameCustoms relabels every custom option positionally: labels[i]
// becomes the label of the i-th entry in current display order.
func (s *OptionSet) RenameCustoms(labels []string) error {
	current := s.CustomLabels()
	if len(labels) != len(current) {
		return fmt.Errorf("%w: %d labels for %d custom options",
			ErrCardinalityMismatch, len(labels), len(current))
	}
	if err := checkDistinct(labels); err != nil {
		return err
	}

	next := make(map[string]string, len(current))
	for i, oldLabel := range current {
		next[labels[i]] = s.customs[oldLabel]
	}
	s.customs = next
	return nil
}

// renameEntry moves m[oldLabel] to m[newLabel], refusing to collapse two
// entries into one.
func renameEntry[V any](m map[string]V, oldLabel, newLabel string) error {
	value, ok := m[oldLabel]
	if !ok {
		return fmt.Errorf("%w: %q", ErrLabelNotFound, oldLabel)
	}
	if newLabel == oldLabel {
		return nil
	}
	if _, taken := m[newLabel]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateLabel, newLabel)
	}
	delete(m, oldLabel)
	m[newLabel] = value
	return nil
}

// validateRenames checks a bulk rename before anything is touched: the
// count must match, every source label must exist, and no two entries may
// end up under the same label.
func validateRenames[V any](m map[string]V, renames map[string]string) error {
	if len(renames) != len(m) {
		return fmt.Errorf("%w: %d renames for %d options",
			ErrCardinalityMismatch, len(renames), len(m))
	}

	seen := make(map[string]struct{}, len(renames))
	for oldLabel, newLabel := range renames {
		if _, ok := m[oldLabel]; !ok {
			return fmt.Errorf("%w: %q", ErrLabelNotFound, oldLabel)
		}
		if _, dup := seen[newLabel]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, newLabel)
		}
		seen[newLabel] = struct{}{}
	}
	return nil
}

// checkDistinct rejects duplicates in a positional label list.
func checkDistinct(labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if _, dup := seen[label]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
		seen[label] = struct{}{}
	}
	return nil
}

// sortedKeys returns m's keys in lexicographic order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
