package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GenerateNumber genera el número de factura con formato PREFIX-YYYYMMDD-NNN,
// donde NNN es un contador por día derivado de los números existentes: el
// mayor sufijo del mismo día más uno. A diferencia de un sufijo aleatorio,
// el contador no puede colisionar. Pasado 999 el sufijo se ensancha en vez
// de dar la vuelta.
func GenerateNumber(prefix string, date time.Time, existing []string) string {
	dayPrefix := fmt.Sprintf("%s-%s-", prefix, date.Format("20060102"))
	max := 0
	for _, number := range existing {
		suffix, ok := strings.CutPrefix(number, dayPrefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", dayPrefix, max+1)
}
