// Package export renders a Solver's theory signature and recorded
// solutions as JSON, using github.com/bytedance/sonic in place of
// encoding/json for the encode path.
package export
