// Package password generates passwords from character-class policies and
// scores arbitrary passwords on a fixed three-tier heuristic.
//
// Both operations are stateless. Generation reads every random draw,
// including the final shuffle, from crypto/rand.
package password
