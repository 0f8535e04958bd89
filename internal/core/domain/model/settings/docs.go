// Package settings contains the company profile captured by the setup
// wizard. The business category decides which workflows the store runs:
// pizza/restaurant and delivery shop businesses get the kitchen board and
// driver dispatch, the rest run plain counter sales.
package settings
