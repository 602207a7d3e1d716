// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the commands it runs (resolve, check and
// import), decoupled from any specific entrypoint like a CLI.
package app
