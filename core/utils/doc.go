// Package utils provides small conversion helpers shared by the catalog adapters,
// such as turning decoded JSON identifiers into stable strings.
package utils
