//go:build js && wasm
// +build js,wasm

package main

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/Tiburonboy/Character-based-cipher/internal/config"
	"github.com/Tiburonboy/Character-based-cipher/internal/pkg/alphabet"
	"github.com/Tiburonboy/Character-based-cipher/internal/pkg/encryption"
	"github.com/Tiburonboy/Character-based-cipher/internal/pkg/encryption/modes"
	"github.com/Tiburonboy/Character-based-cipher/internal/pkg/encryption/padding"
)

func errObject(msg string) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("error", msg)
	return obj
}

// newCipher builds a cipher instance from a table-set JSON string.
func newCipher(tablesJSON string) (*encryption.Feistel, error) {
	tables, err := config.ParseTables([]byte(tablesJSON))
	if err != nil {
		return nil, err
	}
	params, err := tables.Params()
	if err != nil {
		return nil, err
	}
	return encryption.NewFeistel(params)
}

// CharCipher.EncryptText(tablesJSON, keyLetters, modeName, ivLetters, text) -> {ciphertext, iv}
func encryptText(this js.Value, args []js.Value) any {
	if len(args) < 5 {
		return errObject("insufficient args")
	}

	cipher, err := newCipher(args[0].String())
	if err != nil {
		return errObject(err.Error())
	}

	key, err := alphabet.Encode(args[1].String())
	if err != nil {
		return errObject("invalid key: " + err.Error())
	}

	mode := modes.GetMode(strings.ToUpper(args[2].String()))
	if mode == nil {
		return errObject("unknown mode")
	}

	var iv []byte
	if mode.RequiresIV() {
		if ivText := args[3].String(); ivText != "" {
			if iv, err = alphabet.Encode(ivText); err != nil {
				return errObject("invalid iv: " + err.Error())
			}
		} else {
			if iv, err = encryption.GenerateIV(cipher.BlockSize()); err != nil {
				return errObject(err.Error())
			}
		}
	}

	padder := padding.GetPadder("BLOCK_COUNT")
	msg := padder.Pad(alphabet.EncodeFilter(args[4].String()), cipher.BlockSize())

	ct, err := mode.Encrypt(cipher, key, msg, iv)
	if err != nil {
		return errObject(err.Error())
	}

	ctLetters, err := alphabet.Decode(ct)
	if err != nil {
		return errObject(err.Error())
	}
	ivLetters, _ := alphabet.Decode(iv)

	result := js.Global().Get("Object").New()
	result.Set("ciphertext", ctLetters)
	result.Set("iv", ivLetters)
	return result
}

// CharCipher.DecryptText(tablesJSON, keyLetters, modeName, ivLetters, ciphertext) -> {plaintext}
func decryptText(this js.Value, args []js.Value) any {
	if len(args) < 5 {
		return errObject("insufficient args")
	}

	cipher, err := newCipher(args[0].String())
	if err != nil {
		return errObject(err.Error())
	}

	key, err := alphabet.Encode(args[1].String())
	if err != nil {
		return errObject("invalid key: " + err.Error())
	}

	mode := modes.GetMode(strings.ToUpper(args[2].String()))
	if mode == nil {
		return errObject("unknown mode")
	}

	var iv []byte
	if mode.RequiresIV() {
		if iv, err = alphabet.Encode(args[3].String()); err != nil {
			return errObject("invalid iv: " + err.Error())
		}
	}

	ct, err := alphabet.Encode(strings.TrimSpace(args[4].String()))
	if err != nil {
		return errObject("invalid ciphertext: " + err.Error())
	}

	pt, err := mode.Decrypt(cipher, key, ct, iv)
	if err != nil {
		return errObject(err.Error())
	}

	unpadded, err := padding.GetPadder("BLOCK_COUNT").Unpad(pt)
	if err != nil {
		return errObject(err.Error())
	}

	ptLetters, err := alphabet.Decode(unpadded)
	if err != nil {
		return errObject(err.Error())
	}

	result := js.Global().Get("Object").New()
	result.Set("plaintext", ptLetters)
	return result
}

func main() {
	fmt.Println("Character cipher WASM module initialized")

	cipherObj := js.Global().Get("Object").New()
	cipherObj.Set("EncryptText", js.FuncOf(encryptText))
	cipherObj.Set("DecryptText", js.FuncOf(decryptText))
	js.Global().Set("CharCipher", cipherObj)

	js.Global().Set("CharCipherReady", js.ValueOf(true))

	// Keep the program running; required for Go WASM programs
	<-make(chan struct{})
}
