package i18n

var ptBRMessages = map[Code]string{
	CodeVillainMalformedName: `"{{.Input}}" não é um nome completo: esperado nome e sobrenome separados por um espaço, recebidas {{.Tokens}} parte(s)`,
	CodeVillainPlanCancelled: "{{.Villain}} parou de tramar antes do plano ficar pronto",
	CodeWeaponUnknown:        `arma desconhecida "{{.Weapon}}"`,
	CodeWeaponScriptInvalid:  `o script da arma "{{.Weapon}}" é inválido`,
	CodeWeaponMisfire:        `a arma "{{.Weapon}}" falhou`,
}
