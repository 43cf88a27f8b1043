// Package window generates analysis windows for block consumers.
package window
