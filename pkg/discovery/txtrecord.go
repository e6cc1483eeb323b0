package discovery

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// EncodeNodeTXT creates TXT records for the node service.
func EncodeNodeTXT(info *NodeInfo) TXTRecordMap {
	version := info.Version
	if version == "" {
		version = ProtocolVersion
	}
	return TXTRecordMap{
		TXTKeyName:    info.Name,
		TXTKeyVersion: version,
	}
}

// DecodeNodeTXT parses TXT records of a node service. Unknown keys are
// ignored.
func DecodeNodeTXT(txt TXTRecordMap) (*NodeInfo, error) {
	name, ok := txt[TXTKeyName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyName)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: empty %s", ErrInvalidTXTRecord, TXTKeyName)
	}

	version, ok := txt[TXTKeyVersion]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyVersion)
	}

	return &NodeInfo{Name: name, Version: version}, nil
}

// TXTRecordsToStrings converts a TXTRecordMap to a slice of "key=value"
// strings, sorted by key.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for _, k := range slices.Sorted(maps.Keys(txt)) {
		result = append(result, k+"="+txt[k])
	}
	return result
}

// StringsToTXTRecords parses a slice of "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		k, v, found := strings.Cut(s, "=")
		if found {
			txt[k] = v
		} else if k != "" {
			// Key without value (boolean flag)
			txt[k] = ""
		}
	}
	return txt
}

// InstanceName derives the mDNS instance name from a node name.
func InstanceName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidInstanceName)
	}
	if len(name) > MaxInstanceNameLen {
		return name[:MaxInstanceNameLen], nil
	}
	return name, nil
}
