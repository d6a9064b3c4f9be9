// Package commands defines the coldsign CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - keygen    Generate a fresh seed and store it as an encrypted container
//   - encrypt   Seal an existing private key into an encrypted container
//   - sign      Decrypt a container and sign a Solana-style message
//   - sign-evm  Decrypt a container and sign a 32-byte EVM transaction hash
//   - inspect   Show a stored container's version and public key
//   - list      List stored container names
//
// # Implementation
//
// The root command fixes the memory-locking policy (strict by default,
// permissive via --permissive or COLDSIGN_ALLOW_UNLOCKED_MEMORY) and builds
// the dependency graph before any subcommand runs. Passphrases are read
// from the terminal without echo unless supplied with -p.
package commands
