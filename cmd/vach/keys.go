package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/arloliu/vach/keyfile"
)

// loadSecret resolves the secret seed a command needs from --keypair or
// --secret, whichever was supplied. Neither being set is not an error;
// callers that require one check the returned slice's length themselves.
func loadSecret(c *cli.Context) ([]byte, error) {
	if kp := c.String("keypair"); kp != "" {
		secret, _, err := keyfile.ReadKeyPair(kp)
		return secret, err
	}
	if sk := c.String("secret"); sk != "" {
		return keyfile.ReadSecret(sk)
	}

	return nil, nil
}

// loadPublic resolves the public key a command needs from --keypair or
// --public.
func loadPublic(c *cli.Context) ([]byte, error) {
	if kp := c.String("keypair"); kp != "" {
		_, public, err := keyfile.ReadKeyPair(kp)
		return public, err
	}
	if pk := c.String("public"); pk != "" {
		return keyfile.ReadPublic(pk)
	}

	return nil, nil
}

func requireString(c *cli.Context, flagName string) (string, error) {
	v := c.String(flagName)
	if v == "" {
		return "", fmt.Errorf("missing required flag --%s", flagName)
	}

	return v, nil
}
