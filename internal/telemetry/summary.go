package telemetry

import (
	"fmt"
	"io"
)

// ExampleQueries são perguntas sugeridas para o serviço de consulta.
var ExampleQueries = []string{
	"Which device used the most energy today?",
	"What was the total energy consumption in the last hour?",
	"Show me the energy trends for my AC",
}

// Report imprime o resumo final da execução em out.
func Report(out io.Writer, result RunResult) {
	if result.Interrupted {
		fmt.Fprintf(out, "Simulação interrompida após %d de %d envios.\n", result.Attempted, result.Total)
	} else {
		fmt.Fprintln(out, "Simulação concluída!")
	}
	fmt.Fprintf(out, "Execução %s (dia simulado %s)\n", result.RunID, result.StartOfDay.Format("2006-01-02"))
	fmt.Fprintf(out, "Enviadas com sucesso %d/%d leituras de telemetria\n", result.Successful, result.Total)
	if result.Rejected > 0 || result.Failed > 0 {
		fmt.Fprintf(out, "Rejeitadas: %d, falhas: %d\n", result.Rejected, result.Failed)
	}
	fmt.Fprintln(out, "Agora é possível testar o serviço de IA com perguntas como:")
	for _, q := range ExampleQueries {
		fmt.Fprintf(out, "   - '%s'\n", q)
	}
}
