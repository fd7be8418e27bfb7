//go:build focalsplit_debug

package focalsplit

const debugChecks = true
