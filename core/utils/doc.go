// Package utils provides common helpers shared by the receptor packages:
// loose JSON value conversion used when normalizing inbound payloads, and
// deterministic slug derivation for posts and taxonomy terms.
package utils
