// Package app contains the model validator's core logic. It defines the
// main App struct, its configuration, and the validation pass over a model
// directory, decoupled from any specific entrypoint like a CLI.
package app
