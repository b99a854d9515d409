package lightclient_test

import (
	"github.com/cosmos/eureka-attestation/lightclient"
)

func (suite *LightClientTestSuite) TestClientStateValidate() {
	testCases := []struct {
		name     string
		malleate func(cs *lightclient.ClientState)
		expErr   error
	}{
		{
			"valid client state",
			func(cs *lightclient.ClientState) {},
			nil,
		},
		{
			"empty attestor set",
			func(cs *lightclient.ClientState) { cs.AttestorAddresses = nil },
			lightclient.ErrInvalidClient,
		},
		{
			"zero threshold",
			func(cs *lightclient.ClientState) { cs.MinRequiredSigs = 0 },
			lightclient.ErrInvalidClient,
		},
		{
			"threshold exceeds attestor count",
			func(cs *lightclient.ClientState) { cs.MinRequiredSigs = numAttestors + 1 },
			lightclient.ErrInvalidClient,
		},
		{
			"empty attestor address",
			func(cs *lightclient.ClientState) { cs.AttestorAddresses[2] = "" },
			lightclient.ErrInvalidClient,
		},
		{
			"malformed attestor address",
			func(cs *lightclient.ClientState) { cs.AttestorAddresses[2] = "0xnothex" },
			lightclient.ErrInvalidClient,
		},
		{
			"duplicate attestor address",
			func(cs *lightclient.ClientState) { cs.AttestorAddresses[1] = cs.AttestorAddresses[0] },
			lightclient.ErrInvalidClient,
		},
		{
			"duplicate attestor address with different hex case",
			func(cs *lightclient.ClientState) {
				cs.AttestorAddresses[1] = "0x" + lowerHex(cs.AttestorAddresses[0][2:])
			},
			lightclient.ErrInvalidClient,
		},
		{
			"zero latest height",
			func(cs *lightclient.ClientState) { cs.LatestHeight = 0 },
			lightclient.ErrInvalidClient,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			addresses := make([]string, len(suite.addresses))
			copy(addresses, suite.addresses)
			cs := lightclient.NewClientState(addresses, defaultThreshold, 1)

			tc.malleate(cs)

			err := cs.Validate()
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func lowerHex(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'F' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
