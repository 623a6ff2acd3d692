// hash-admin derives the scrypt credential for an administrator password
// and prints the env lines the server consumes.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Emeralddossou/detecporc/internal/auth"
)

func main() {
	user := flag.String("user", "admindp", "administrator username")
	salt := flag.String("salt", "detecporc-salt-v1", "fixed salt for the scrypt derivation")
	password := flag.String("password", "", "password to hash (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("usage: hash-admin -password <password> [-user <name>] [-salt <salt>]")
	}

	hash, err := auth.HashPassword(*password, *salt)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	fmt.Printf("ADMIN_USER=%s\n", *user)
	fmt.Printf("ADMIN_SALT=%s\n", *salt)
	fmt.Printf("ADMIN_HASH=%s\n", hash)
}
