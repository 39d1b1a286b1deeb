package deltas

// NoSkip is the exclusion index meaning "keep every level".
// Any negative index behaves the same way.
const NoSkip = -1
