package f1ap

import (
	"fmt"

	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap/f1apType"
)

// F1AP-PDU is a CHOICE of four alternatives without extension marker
const pduParams = "valueLB:0,valueUB:3"

// Decoder is to decode raw data to F1AP pdu pointer with PER Aligned
func Decoder(b []byte) (pdu *f1apType.F1APPDU, err error) {
	defer func() {
		if p := recover(); p != nil {
			pdu = nil
			err = fmt.Errorf("f1ap: decode panic: %v", p)
		}
	}()
	pdu = &f1apType.F1APPDU{}
	if err = aper.UnmarshalWithParams(b, pdu, pduParams); err != nil {
		return nil, err
	}
	return pdu, nil
}

// Encoder is to F1AP pdu to raw data with PER Aligned
func Encoder(pdu f1apType.F1APPDU) ([]byte, error) {
	return aper.MarshalWithParams(pdu, pduParams)
}
