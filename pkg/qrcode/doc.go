// Package qrcode renders PNG QR codes, primarily for displaying otpauth://
// provisioning URIs during two-factor enrollment.
//
// Codes use medium error correction, which recovers from roughly 15% data
// corruption and scans reliably from typical screens. 256px is a good
// default size for mobile scanning.
//
// # Usage
//
// Raw PNG bytes:
//
//	png, err := qrcode.Generate(uri, 256)
//	if err != nil {
//		log.Fatal(err)
//	}
//	w.Header().Set("Content-Type", "image/png")
//	w.Write(png)
//
// Base64 data URI for direct HTML embedding:
//
//	dataURI, err := qrcode.GenerateBase64Image(uri, 256)
//	fmt.Fprintf(w, `<img src="%s" alt="Scan with your authenticator app">`, dataURI)
package qrcode
