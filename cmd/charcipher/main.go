package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Tiburonboy/Character-based-cipher/internal/config"
	"github.com/Tiburonboy/Character-based-cipher/internal/pkg/alphabet"
	"github.com/Tiburonboy/Character-based-cipher/internal/pkg/encryption"
	"github.com/Tiburonboy/Character-based-cipher/internal/pkg/encryption/modes"
	"github.com/Tiburonboy/Character-based-cipher/internal/pkg/encryption/padding"
	"github.com/Tiburonboy/Character-based-cipher/internal/pkg/helpers"
)

func main() {
	cfg := config.Load()

	var (
		tablesPath = flag.String("tables", cfg.TablesPath, "path to the cipher table file")
		genTables  = flag.Bool("gen-tables", false, "generate a fresh table file and exit")
		blockSize  = flag.Int("block", cfg.BlockSize, "block size in symbols when generating tables")
		modeName   = flag.String("mode", cfg.Mode, "chaining mode: ECB or CBC")
		padName    = flag.String("pad", cfg.Padding, "padding scheme: BLOCK_COUNT or X_FILL")
		keyText    = flag.String("key", "", "master key as letters (one block long)")
		passphrase = flag.String("passphrase", "", "derive the master key from a passphrase instead of -key")
		ivText     = flag.String("iv", "", "initialization vector as letters (CBC only; random if empty)")
		decrypt    = flag.Bool("decrypt", false, "decrypt instead of encrypt")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	logger := helpers.NewLogger("charcipher", *verbose)

	if *genTables {
		tables, err := config.GenerateTableSet(*blockSize)
		if err != nil {
			log.Fatalf("Failed to generate tables: %v", err)
		}
		if err := config.SaveTables(*tablesPath, tables); err != nil {
			log.Fatalf("Failed to save tables: %v", err)
		}
		fmt.Printf("Wrote %d-symbol block tables to %s\n", *blockSize, *tablesPath)
		return
	}

	tables, err := config.LoadTables(*tablesPath)
	if err != nil {
		log.Fatalf("Failed to load tables: %v (run with -gen-tables first?)", err)
	}
	params, err := tables.Params()
	if err != nil {
		log.Fatalf("Invalid table file: %v", err)
	}

	cipher, err := encryption.NewFeistel(params)
	if err != nil {
		log.Fatalf("Failed to construct cipher: %v", err)
	}
	logger.Debug("cipher ready", cipher.Name(), "block size", cipher.BlockSize())

	key, err := resolveKey(cipher, *keyText, *passphrase, cfg.Salt)
	if err != nil {
		log.Fatalf("Failed to resolve key: %v", err)
	}

	mode := modes.GetMode(strings.ToUpper(*modeName))
	if mode == nil {
		log.Fatalf("Unknown mode %q (want ECB or CBC)", *modeName)
	}
	padder := padding.GetPadder(strings.ToUpper(*padName))
	if padder == nil {
		log.Fatalf("Unknown padding %q (want BLOCK_COUNT or X_FILL)", *padName)
	}

	text, err := readMessage(flag.Args())
	if err != nil {
		log.Fatalf("Failed to read message: %v", err)
	}

	if *decrypt {
		runDecrypt(cipher, mode, padder, key, *ivText, text)
		return
	}
	runEncrypt(cipher, mode, padder, key, *ivText, text, logger)
}

// resolveKey turns the -key or -passphrase flag into a master key.
func resolveKey(cipher encryption.SymbolCipher, keyText, passphrase, salt string) ([]byte, error) {
	switch {
	case keyText != "" && passphrase != "":
		return nil, fmt.Errorf("use -key or -passphrase, not both")
	case keyText != "":
		key, err := alphabet.Encode(keyText)
		if err != nil {
			return nil, err
		}
		if len(key) != cipher.KeySize() {
			return nil, fmt.Errorf("key must be %d letters, got %d", cipher.KeySize(), len(key))
		}
		return key, nil
	case passphrase != "":
		return encryption.PassphraseKey(passphrase, salt, cipher.KeySize())
	default:
		return nil, fmt.Errorf("either -key or -passphrase is required")
	}
}

func readMessage(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runEncrypt(cipher encryption.SymbolCipher, mode modes.Mode, padder padding.Padder, key []byte, ivText, text string, logger *helpers.Logger) {
	msg := alphabet.EncodeFilter(text)
	if len(msg) == 0 {
		log.Fatalf("Message contains no letters")
	}
	msg = padder.Pad(msg, cipher.BlockSize())

	var iv []byte
	var err error
	if mode.RequiresIV() {
		if ivText != "" {
			if iv, err = alphabet.Encode(ivText); err != nil {
				log.Fatalf("Invalid IV: %v", err)
			}
		} else {
			if iv, err = encryption.GenerateIV(cipher.BlockSize()); err != nil {
				log.Fatalf("Failed to generate IV: %v", err)
			}
			ivLetters, _ := alphabet.Decode(iv)
			logger.Info("generated IV", ivLetters)
		}
	}

	ct, err := mode.Encrypt(cipher, key, msg, iv)
	if err != nil {
		log.Fatalf("Encryption failed: %v", err)
	}

	out, err := alphabet.Decode(ct)
	if err != nil {
		log.Fatalf("Failed to decode ciphertext: %v", err)
	}
	fmt.Println(out)
}

func runDecrypt(cipher encryption.SymbolCipher, mode modes.Mode, padder padding.Padder, key []byte, ivText, text string) {
	msg, err := alphabet.Encode(strings.TrimSpace(text))
	if err != nil {
		log.Fatalf("Invalid ciphertext: %v", err)
	}

	var iv []byte
	if mode.RequiresIV() {
		if ivText == "" {
			log.Fatalf("Mode %s needs -iv to decrypt", mode.Name())
		}
		if iv, err = alphabet.Encode(ivText); err != nil {
			log.Fatalf("Invalid IV: %v", err)
		}
	}

	pt, err := mode.Decrypt(cipher, key, msg, iv)
	if err != nil {
		log.Fatalf("Decryption failed: %v", err)
	}

	unpadded, err := padder.Unpad(pt)
	if err != nil {
		log.Fatalf("Unpadding failed: %v", err)
	}

	out, err := alphabet.Decode(unpadded)
	if err != nil {
		log.Fatalf("Failed to decode plaintext: %v", err)
	}
	fmt.Println(out)
}
