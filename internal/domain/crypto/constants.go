package crypto

// AuxiliaryPrime is the Mersenne prime 2^5 - 1 folded into every modulus.
const AuxiliaryPrime = 31

// MinPrimeInput is the smallest accepted caller prime. Primality itself is not checked.
const MinPrimeInput = 2

// FirstPublicExponent is where the odd public exponent search starts.
const FirstPublicExponent = 3

// ColorPlanes is the number of color planes an image is decomposed into (blue, green, red).
const ColorPlanes = 3

// CiphertextSeparator separates decimal ciphertext elements in text and file payloads.
const CiphertextSeparator = ","

// PayloadNumber represents a single integer payload
const PayloadNumber = "number"

// PayloadText represents a character string payload
const PayloadText = "text"

// PayloadFile represents an uploaded file payload
const PayloadFile = "file"

// PayloadImage represents an image payload
const PayloadImage = "image"

// FileModeText encrypts a file as UTF-8 text, one element per code point
const FileModeText = "text"

// FileModeBinary encrypts a file as an opaque byte stream, one element per byte
const FileModeBinary = "binary"

// EncryptedPrefix is prepended to the base name of encrypted artifacts
const EncryptedPrefix = "encrypted_"

// DecryptedPrefix is prepended to the base name of decrypted artifacts
const DecryptedPrefix = "decrypted_"

// EncryptedTextFileName is the download name of an encrypted file payload
const EncryptedTextFileName = "encrypted_text.txt"

// DecryptedTextFileName is the download name of a decrypted file payload
const DecryptedTextFileName = "decrypted_text.txt"
