package blackjack

// DealerName is the name shown for the dealer
const DealerName = "Dealer"

// Dealer plays automatically: it hits while under 17 and stands otherwise
type Dealer struct {
	seat
}

// NewDealer returns a dealer with an empty hand
func NewDealer() *Dealer {
	d := &Dealer{seat: seat{name: DealerName}}
	d.Reset()
	return d
}

// Display renders the dealer's seat
func (d *Dealer) Display(display Display, masked bool) {
	display.Dealer(d.name, d.hand, d.Total(), masked)
}

// TakeTurn draws until the total reaches 17, regardless of bust risk
func (d *Dealer) TakeTurn(r *Round) error {
	for d.Total() < dealerStandsOn {
		if err := r.deal(d); err != nil {
			return err
		}
	}

	r.log.WithField("dealerTotal", d.Total()).Debug("dealer stands")
	return nil
}
