// Package upbit implements the Exchange interface for the Upbit REST API.
//
// The package includes:
//   - Protocol: request building, local parameter checks and JWT signing
//   - Normalizer: error envelope detection and typed response decoding
//   - UpbitExchange: the client tying protocol, credentials and HTTP together
//
// Private endpoints are signed with an HS256 bearer token. When a request has
// a query string the token also carries the SHA-512 hash of the query bytes
// exactly as sent.
//
// Example usage:
//
//	ex, err := upbit.New(core.DefaultConfig().WithCredentials(&core.Credentials{
//	    AccessKey: os.Getenv("UPBIT_ACCESS_KEY"),
//	    SecretKey: os.Getenv("UPBIT_SECRET_KEY"),
//	}))
//	accounts, err := ex.GetAccounts(ctx)
//
// Upbit API Documentation: https://docs.upbit.com/reference
package upbit
