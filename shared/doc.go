// Package shared holds models used by more than one API resource.
package shared
