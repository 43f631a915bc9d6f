package addresscodec

// Network selects which network prefix an X-address is encoded for.
type Network int

const (
	// MainNet is the production XRP Ledger network.
	MainNet Network = iota
	// TestNet is a public test network.
	TestNet
)

var (
	mainNetPrefix = []byte{0x05, 0x44}
	testNetPrefix = []byte{0x04, 0x93}
)

const (
	xAddressPayloadLength = accountIDLength + 1 + 8 // account + flag byte + 4-byte tag + 4 reserved bytes
)

func networkPrefix(n Network) []byte {
	if n == TestNet {
		return testNetPrefix
	}
	return mainNetPrefix
}

// ClassicAddressToXAddress encodes a 20-byte AccountID, an optional
// destination tag, and a target network as an X-address.
func ClassicAddressToXAddress(accountID []byte, tag *uint32, network Network) (string, error) {
	if len(accountID) != accountIDLength {
		return "", newErr(ErrInvalidAddress, "account id must be 20 bytes")
	}

	payload := make([]byte, 0, xAddressPayloadLength)
	payload = append(payload, accountID...)

	if tag != nil {
		payload = append(payload, 0x01)
		t := *tag
		payload = append(payload, byte(t), byte(t>>8), byte(t>>16), byte(t>>24))
		payload = append(payload, 0, 0, 0, 0)
	} else {
		payload = append(payload, 0x00)
		payload = append(payload, 0, 0, 0, 0, 0, 0, 0, 0)
	}

	return checkEncode(payload, networkPrefix(network)), nil
}

// XAddressToClassicAddress decodes an X-address into its 20-byte AccountID,
// optional destination tag, and network.
func XAddressToClassicAddress(xAddress string) (accountID []byte, tag *uint32, network Network, err error) {
	payload, version, derr := checkDecode(xAddress, 2)
	if derr != nil {
		return nil, nil, 0, wrapErr(ErrInvalidXAddress, "bad base58check encoding", derr)
	}
	if len(payload) != xAddressPayloadLength {
		return nil, nil, 0, newErr(ErrInvalidXAddress, "unexpected payload length")
	}

	switch {
	case bytesEqual(version, mainNetPrefix):
		network = MainNet
	case bytesEqual(version, testNetPrefix):
		network = TestNet
	default:
		return nil, nil, 0, newErr(ErrInvalidXAddress, "unrecognized network prefix")
	}

	accountID = payload[:accountIDLength]
	flag := payload[accountIDLength]
	tagBytes := payload[accountIDLength+1:]

	switch flag {
	case 0x00:
		tag = nil
	case 0x01:
		v := uint32(tagBytes[0]) | uint32(tagBytes[1])<<8 | uint32(tagBytes[2])<<16 | uint32(tagBytes[3])<<24
		tag = &v
	default:
		return nil, nil, 0, newErr(ErrInvalidXAddress, "invalid tag flag byte")
	}

	return accountID, tag, network, nil
}

// IsValidXAddress reports whether s decodes as a well-formed X-address.
func IsValidXAddress(s string) bool {
	_, _, _, err := XAddressToClassicAddress(s)
	return err == nil
}
