// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"ksc/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the KSC REPL, %s!\n", currentUser.Username)
	fmt.Println("Enter one program per line; the compiled IR is printed back.")
	repl.Start(os.Stdin)
}
