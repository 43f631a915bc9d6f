package transaction

// AccountSetFlag enumerates the AccountSet transaction's SetFlag/ClearFlag
// values (distinct from the Flags bitset; these are "flag numbers", not
// bits).
type AccountSetFlag uint32

const (
	AsfRequireDest    AccountSetFlag = 1
	AsfRequireAuth    AccountSetFlag = 2
	AsfDisallowXRP    AccountSetFlag = 3
	AsfDisableMaster  AccountSetFlag = 4
	AsfDefaultRipple  AccountSetFlag = 8
	AsfDepositAuth    AccountSetFlag = 9
	AsfGlobalFreeze   AccountSetFlag = 7
	AsfNoFreeze       AccountSetFlag = 6
)

// AccountSet modifies an account's settings.
type AccountSet struct {
	Common
	Domain        string
	EmailHash     string
	SetFlag       *uint32
	ClearFlag     *uint32
	TransferRate  *uint32
	TickSize      *uint8
}

func (a AccountSet) FieldMap() map[string]interface{} {
	out := a.Common.baseFieldMap("AccountSet")
	if a.Domain != "" {
		out["Domain"] = a.Domain
	}
	if a.EmailHash != "" {
		out["EmailHash"] = a.EmailHash
	}
	if a.SetFlag != nil {
		out["SetFlag"] = *a.SetFlag
	}
	if a.ClearFlag != nil {
		out["ClearFlag"] = *a.ClearFlag
	}
	if a.TransferRate != nil {
		out["TransferRate"] = *a.TransferRate
	}
	return out
}

func (a AccountSet) GetErrors() []error {
	var errs []error
	if a.SetFlag != nil && a.ClearFlag != nil && *a.SetFlag == *a.ClearFlag {
		errs = append(errs, newErr(ErrFieldConflict, "SetFlag", "SetFlag and ClearFlag must not be equal"))
	}
	if a.TransferRate != nil && *a.TransferRate != 0 && (*a.TransferRate < 1000000000 || *a.TransferRate > 2000000000) {
		errs = append(errs, newErr(ErrValueOutOfRange, "TransferRate", "transfer rate must be 0 or in [1000000000, 2000000000]"))
	}
	return errs
}
