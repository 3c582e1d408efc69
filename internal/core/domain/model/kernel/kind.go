package kernel

import (
	"fmt"
	"strings"

	"assettransfer/internal/pkg/errs"
)

// Kind identifies one of the record types kept in the ledger. Every storage
// key starts with the kind's tag followed by KeySeparator, so records of
// different kinds never share a key and each kind occupies one contiguous
// key range.
type Kind int

const (
	// KindUnknown is the zero value and is never stored.
	KindUnknown Kind = iota
	KindAsset
	KindOrder
	KindDistribution
	KindSale
)

// KeySeparator joins a kind tag and a record identifier.
const KeySeparator = ":"

// rangeTerminator is the byte right after KeySeparator; "tag;" is the
// smallest string greater than every "tag:<id>".
const rangeTerminator = ";"

func getKindTags() map[Kind]string {
	//nolint:exhaustive // KindUnknown has no tag
	return map[Kind]string{
		KindAsset:        "asset",
		KindOrder:        "order",
		KindDistribution: "distribution",
		KindSale:         "sale",
	}
}

func getKindTitles() map[Kind]string {
	//nolint:exhaustive // KindUnknown has no title
	return map[Kind]string{
		KindAsset:        "Asset",
		KindOrder:        "Order",
		KindDistribution: "Distribution",
		KindSale:         "Sale asset",
	}
}

func getKindCodes() map[Kind]string {
	//nolint:exhaustive // KindUnknown has no code
	return map[Kind]string{
		KindAsset:        "ASSET",
		KindOrder:        "ORDER",
		KindDistribution: "DISTRIBUTION",
		KindSale:         "SALE_ASSET",
	}
}

// Kinds lists every storable kind in key order of their tags.
func Kinds() []Kind {
	return []Kind{KindAsset, KindDistribution, KindOrder, KindSale}
}

// ParseKind resolves a tag such as "asset" into its Kind.
func ParseKind(tag string) (Kind, error) {
	for kind, t := range getKindTags() {
		if t == tag {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a known kind", tag))
}

// Validate checks that k is one of the storable kinds.
func (k Kind) Validate() error {
	if _, ok := getKindTags()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the tag used in storage keys, or "unknown".
func (k Kind) String() string {
	if tag, ok := getKindTags()[k]; ok {
		return tag
	}
	return "unknown"
}

// Title is the human readable name used in caller-facing messages,
// e.g. "Sale asset s1 does not exist".
func (k Kind) Title() string {
	if title, ok := getKindTitles()[k]; ok {
		return title
	}
	return "Record"
}

// Code is the upper-case prefix of error codes reported for this kind.
func (k Kind) Code() string {
	if code, ok := getKindCodes()[k]; ok {
		return code
	}
	return "RECORD"
}

// Prefix returns "<tag>:".
func (k Kind) Prefix() string {
	return k.String() + KeySeparator
}

// Key builds the storage key of the record id.
func (k Kind) Key(id string) string {
	return k.Prefix() + id
}

// Range returns the half-open key range [start, end) holding every record of k.
func (k Kind) Range() (string, string) {
	return k.Prefix(), k.String() + rangeTerminator
}

// IDFromKey strips the kind prefix from key. It reports false when key
// belongs to another kind.
func (k Kind) IDFromKey(key string) (string, bool) {
	return strings.CutPrefix(key, k.Prefix())
}

// KindOfKey returns the kind encoded in a storage key.
func KindOfKey(key string) Kind {
	tag, _, found := strings.Cut(key, KeySeparator)
	if !found {
		return KindUnknown
	}
	kind, err := ParseKind(tag)
	if err != nil {
		return KindUnknown
	}
	return kind
}
