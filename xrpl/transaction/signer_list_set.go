package transaction

// SignerListSet establishes, replaces, or removes a list of signers that
// can multi-sign on behalf of an account.
type SignerListSet struct {
	Common
	SignerQuorum   uint32
	SignerEntries  []SignerEntry
}

func (s SignerListSet) FieldMap() map[string]interface{} {
	out := s.Common.baseFieldMap("SignerListSet")
	out["SignerQuorum"] = s.SignerQuorum
	if len(s.SignerEntries) > 0 {
		entries := make([]map[string]interface{}, len(s.SignerEntries))
		for i, e := range s.SignerEntries {
			entries[i] = e.fieldMap()
		}
		out["SignerEntries"] = entries
	}
	return out
}

func (s SignerListSet) GetErrors() []error {
	var errs []error
	if s.SignerQuorum == 0 {
		if len(s.SignerEntries) != 0 {
			errs = append(errs, newErr(ErrFieldConflict, "SignerEntries", "deleting a signer list (SignerQuorum=0) must not include entries"))
		}
		return errs
	}
	if len(s.SignerEntries) < 1 || len(s.SignerEntries) > 32 {
		errs = append(errs, newErr(ErrValueOutOfRange, "SignerEntries", "signer list must have between 1 and 32 entries"))
	}
	var totalWeight uint32
	seen := map[string]bool{}
	for _, e := range s.SignerEntries {
		if seen[e.Account] {
			errs = append(errs, newErr(ErrFieldConflict, "SignerEntries", "duplicate signer account "+e.Account))
		}
		seen[e.Account] = true
		totalWeight += uint32(e.SignerWeight)
	}
	if totalWeight < s.SignerQuorum {
		errs = append(errs, newErr(ErrValueOutOfRange, "SignerQuorum", "quorum exceeds the sum of signer weights"))
	}
	return errs
}
