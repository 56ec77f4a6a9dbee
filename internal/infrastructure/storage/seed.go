package storage

import (
	"time"

	"assistencia_os/internal/domain/entities"
)

// Store ids used by the seed dataset and as the scope fallback when an
// identity has no bound store.
const (
	SeedLoja1 = "loja-1"
	SeedLoja2 = "loja-2"
)

// SeedStores returns the static store metadata.
func SeedStores() []entities.Store {
	return []entities.Store{
		{ID: SeedLoja1, Nome: "Assistência Centro", Telefone: "(98) 3232-0001"},
		{ID: SeedLoja2, Nome: "Assistência Shopping", Telefone: "(98) 3232-0002"},
	}
}

// Seed returns the initial dataset used when the state slot is missing or
// unreadable.
func Seed() Snapshot {
	abertura1 := time.Date(2025, 11, 30, 9, 0, 0, 0, time.UTC)
	previsao1 := time.Date(2025, 12, 5, 18, 0, 0, 0, time.UTC)
	abertura2 := time.Date(2025, 12, 1, 10, 30, 0, 0, time.UTC)
	abertura3 := time.Date(2025, 12, 2, 14, 15, 0, 0, time.UTC)

	return Snapshot{
		Clients: []entities.Client{
			{ID: "c1", Nome: "João Silva", TelefonePrincipal: "(98) 99999-0001", CpfCnpj: "111.111.111-11", LojaID: SeedLoja1},
			{ID: "c2", Nome: "Maria Souza", TelefonePrincipal: "(98) 99999-0002", CpfCnpj: "222.222.222-22", LojaID: SeedLoja1},
			{ID: "c3", Nome: "Carlos Lima", TelefonePrincipal: "(98) 99999-0003", CpfCnpj: "333.333.333-33", LojaID: SeedLoja2},
		},
		Devices: []entities.Device{
			{ID: "d1", ClientID: "c1", Tipo: "Celular", Marca: "Apple", Modelo: "iPhone 11", ImeiSerie: "123456789", LojaID: SeedLoja1},
			{ID: "d2", ClientID: "c2", Tipo: "Notebook", Marca: "Dell", Modelo: "Inspiron 15", ImeiSerie: "ABC-987654", LojaID: SeedLoja1},
			{ID: "d3", ClientID: "c3", Tipo: "Celular", Marca: "Samsung", Modelo: "Galaxy S21", ImeiSerie: "XYZ-123456", LojaID: SeedLoja2},
		},
		Services: []entities.ServiceDefinition{
			{ID: "s1", Nome: "Troca de tela", ValorBase: 350, LojaID: SeedLoja1},
			{ID: "s2", Nome: "Formatação", ValorBase: 150, LojaID: SeedLoja1},
			{ID: "s3", Nome: "Limpeza interna", ValorBase: 120, LojaID: SeedLoja2},
		},
		Orders: []entities.ServiceOrder{
			{
				ID: "os1", Numero: "0001",
				ClientID: "c1", DeviceID: "d1", TecnicoID: "tec-loja-1", LojaID: SeedLoja1,
				Status:              entities.OrderStatusAberta,
				DataAbertura:        abertura1,
				DataPrevisao:        &previsao1,
				DefeitoRelatado:     "Tela quebrada após queda.",
				ObservacoesInternas: "Cliente precisa para trabalho.",
				Itens: []entities.ServiceOrderItem{
					{ID: "i1", ServiceID: "s1", Descricao: "Troca completa do conjunto da tela", Valor: 380},
				},
				Subtotal: 380, TotalFinal: 380,
				StatusPagamento: entities.PaymentStatusNaoInformado,
				Logs: []entities.ServiceOrderLog{
					{ID: "log-seed-os1", DataHora: abertura1, UsuarioID: entities.SystemUserID, Acao: entities.LogAcaoOSCriada, Descricao: "Ordem de serviço criada."},
				},
			},
			{
				ID: "os2", Numero: "0002",
				ClientID: "c2", DeviceID: "d2", TecnicoID: "tec-loja-1", LojaID: SeedLoja1,
				Status:          entities.OrderStatusEmAndamento,
				DataAbertura:    abertura2,
				DefeitoRelatado: "Notebook muito lento.",
				Itens: []entities.ServiceOrderItem{
					{ID: "i2", ServiceID: "s2", Descricao: "Formatação + instalação básica", Valor: 180},
				},
				Subtotal: 180, TotalFinal: 180,
				StatusPagamento: entities.PaymentStatusNaoInformado,
				Logs: []entities.ServiceOrderLog{
					{ID: "log-seed-os2", DataHora: abertura2, UsuarioID: entities.SystemUserID, Acao: entities.LogAcaoOSCriada, Descricao: "Ordem de serviço criada."},
				},
			},
			{
				ID: "os3", Numero: "0003",
				ClientID: "c3", DeviceID: "d3", TecnicoID: "tec-loja-2", LojaID: SeedLoja2,
				Status:          entities.OrderStatusDiagnostico,
				DataAbertura:    abertura3,
				DefeitoRelatado: "Não liga.",
				Itens: []entities.ServiceOrderItem{
					{ID: "i3", ServiceID: "s3", Descricao: "Limpeza interna completa", Valor: 150},
				},
				Subtotal: 150, TotalFinal: 150,
				StatusPagamento: entities.PaymentStatusNaoInformado,
				Logs: []entities.ServiceOrderLog{
					{ID: "log-seed-os3", DataHora: abertura3, UsuarioID: entities.SystemUserID, Acao: entities.LogAcaoOSCriada, Descricao: "Ordem de serviço criada."},
				},
			},
		},
	}
}
